// Package circuit models the neural circuits a learner explores: a set
// of neurons and the weighted directed synapses between them. A Circuit
// travels with a question as context so the tutor can ground its answer
// in the learner's current wiring diagram.
package circuit

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Kind classifies a neuron's role in the circuit.
type Kind string

const (
	KindSensory Kind = "sensory"
	KindInter   Kind = "interneuron"
	KindMotor   Kind = "motor"
)

// Neuron is a single node in the circuit.
type Neuron struct {
	ID    string `json:"id"`
	Kind  Kind   `json:"kind,omitempty"`
	Label string `json:"label,omitempty"`
}

// Synapse is a weighted directed edge between two neurons. Positive
// weights are excitatory, negative weights inhibitory.
type Synapse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Circuit is an immutable snapshot of the learner's wiring diagram.
type Circuit struct {
	Neurons  []Neuron  `json:"neurons"`
	Synapses []Synapse `json:"synapses"`
}

// Load reads a circuit from a JSON file and validates it.
func Load(path string) (*Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read circuit file: %w", err)
	}

	var c Circuit
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse circuit file: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid circuit in %s: %w", path, err)
	}

	return &c, nil
}

// Has reports whether the circuit contains a neuron with the given ID.
func (c *Circuit) Has(id string) bool {
	for _, n := range c.Neurons {
		if n.ID == id {
			return true
		}
	}
	return false
}

// Degree returns the fan-in and fan-out of the given neuron.
func (c *Circuit) Degree(id string) (in, out int) {
	for _, s := range c.Synapses {
		if s.To == id {
			in++
		}
		if s.From == id {
			out++
		}
	}
	return in, out
}

// Summary renders a compact single-string description of the circuit,
// suitable for embedding in a question payload.
func (c *Circuit) Summary() string {
	if c == nil || len(c.Neurons) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Neurons: ")
	for i, n := range c.Neurons {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n.ID)
		if n.Kind != "" {
			fmt.Fprintf(&b, " (%s)", n.Kind)
		}
	}

	if len(c.Synapses) > 0 {
		b.WriteString(". Connections: ")
		for i, s := range c.Synapses {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s->%s w=%.2f", s.From, s.To, s.Weight)
		}
	}
	b.WriteString(".")

	return b.String()
}
