package circuit

import (
	"fmt"
	"math"
	"strings"
)

// Validate performs all structural checks on the circuit. It returns a
// combined error describing every problem found, or nil if valid.
func (c *Circuit) Validate() error {
	var errs []string

	idSet := make(map[string]bool, len(c.Neurons))

	for _, n := range c.Neurons {
		if n.ID == "" {
			errs = append(errs, "neuron with empty ID")
			continue
		}
		if idSet[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate neuron ID: %q", n.ID))
		}
		idSet[n.ID] = true

		switch n.Kind {
		case "", KindSensory, KindInter, KindMotor:
		default:
			errs = append(errs, fmt.Sprintf("neuron %q has unknown kind %q", n.ID, n.Kind))
		}
	}

	for _, s := range c.Synapses {
		if !idSet[s.From] {
			errs = append(errs, fmt.Sprintf("synapse references nonexistent source neuron %q", s.From))
		}
		if !idSet[s.To] {
			errs = append(errs, fmt.Sprintf("synapse references nonexistent target neuron %q", s.To))
		}
		if math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			errs = append(errs, fmt.Sprintf("synapse %s->%s has non-finite weight", s.From, s.To))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("circuit validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
