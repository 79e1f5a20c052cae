package circuit

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCircuit() *Circuit {
	return &Circuit{
		Neurons: []Neuron{
			{ID: "AVA", Kind: KindInter},
			{ID: "AVB", Kind: KindInter},
			{ID: "PLM", Kind: KindSensory, Label: "posterior touch"},
		},
		Synapses: []Synapse{
			{From: "PLM", To: "AVA", Weight: 0.8},
			{From: "AVA", To: "AVB", Weight: -0.3},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validCircuit().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		circuit *Circuit
		want    string
	}{
		{
			name: "duplicate neuron ID",
			circuit: &Circuit{
				Neurons: []Neuron{{ID: "AVA"}, {ID: "AVA"}},
			},
			want: "duplicate neuron ID",
		},
		{
			name: "empty neuron ID",
			circuit: &Circuit{
				Neurons: []Neuron{{ID: ""}},
			},
			want: "empty ID",
		},
		{
			name: "unknown kind",
			circuit: &Circuit{
				Neurons: []Neuron{{ID: "AVA", Kind: "glial"}},
			},
			want: "unknown kind",
		},
		{
			name: "dangling synapse source",
			circuit: &Circuit{
				Neurons:  []Neuron{{ID: "AVA"}},
				Synapses: []Synapse{{From: "GHOST", To: "AVA", Weight: 1}},
			},
			want: "nonexistent source",
		},
		{
			name: "dangling synapse target",
			circuit: &Circuit{
				Neurons:  []Neuron{{ID: "AVA"}},
				Synapses: []Synapse{{From: "AVA", To: "GHOST", Weight: 1}},
			},
			want: "nonexistent target",
		},
		{
			name: "non-finite weight",
			circuit: &Circuit{
				Neurons:  []Neuron{{ID: "AVA"}, {ID: "AVB"}},
				Synapses: []Synapse{{From: "AVA", To: "AVB", Weight: math.NaN()}},
			},
			want: "non-finite weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.circuit.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	c := &Circuit{
		Neurons:  []Neuron{{ID: "AVA"}, {ID: "AVA"}},
		Synapses: []Synapse{{From: "X", To: "Y", Weight: 1}},
	}
	err := c.Validate()
	require.Error(t, err)
	for _, want := range []string{"duplicate neuron ID", "nonexistent source", "nonexistent target"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestDegree(t *testing.T) {
	c := validCircuit()
	in, out := c.Degree("AVA")
	assert.Equal(t, 1, in)
	assert.Equal(t, 1, out)

	in, out = c.Degree("PLM")
	assert.Equal(t, 0, in)
	assert.Equal(t, 1, out)
}

func TestHas(t *testing.T) {
	c := validCircuit()
	assert.True(t, c.Has("PLM"))
	assert.False(t, c.Has("GHOST"))
}

func TestSummary(t *testing.T) {
	got := validCircuit().Summary()
	for _, want := range []string{"AVA", "PLM->AVA w=0.80", "AVA->AVB w=-0.30", "sensory"} {
		assert.Contains(t, got, want)
	}

	var nilCircuit *Circuit
	assert.Empty(t, nilCircuit.Summary())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "circuit.json")
	data := `{
		"neurons": [{"id": "AVA", "kind": "interneuron"}, {"id": "PLM", "kind": "sensory"}],
		"synapses": [{"from": "PLM", "to": "AVA", "weight": 0.8}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Neurons, 2)
	assert.Len(t, c.Synapses, 1)
}

func TestLoad_InvalidCircuit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	data := `{"neurons": [{"id": "AVA"}], "synapses": [{"from": "AVA", "to": "GHOST", "weight": 1}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
