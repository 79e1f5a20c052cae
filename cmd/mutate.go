package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyankac/axon/internal/circuit"
	"github.com/priyankac/axon/internal/tutor"
)

var mutateCmd = &cobra.Command{
	Use:   "mutate <neuron> <kind>",
	Short: "Ask what happens when a neuron is perturbed",
	Long: "Run a what-if experiment against the tutor: knock out, silence, or " +
		"otherwise perturb a neuron and ask for the predicted circuit outcome.\n\n" +
		"Kinds: " + kindList(),
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		kind := tutor.MutationKind(args[1])
		if !kind.Valid() {
			return fmt.Errorf("unknown mutation kind %q (valid: %s)", args[1], kindList())
		}

		var c *circuit.Circuit
		if path, _ := cmd.Flags().GetString("circuit"); path != "" {
			loaded, err := circuit.Load(path)
			if err != nil {
				return err
			}
			c = loaded
			if !c.Has(target) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not in the loaded circuit\n", target)
			}
		}

		session, s, err := newSession(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		answer := session.QueryMutation(cmd.Context(), target, kind, c)
		printAnswer(answer, session.Err())
		return nil
	},
}

func init() {
	mutateCmd.Flags().String("circuit", "", "Path to a circuit JSON file to use as context")
	mutateCmd.Flags().String("level", "", "Experience level: beginner, intermediate, advanced")
}

func kindList() string {
	kinds := tutor.MutationKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
