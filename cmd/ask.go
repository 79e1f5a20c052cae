package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyankac/axon/internal/circuit"
	"github.com/priyankac/axon/internal/gateway"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the tutor a question about neural circuits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var c *circuit.Circuit
		if path, _ := cmd.Flags().GetString("circuit"); path != "" {
			loaded, err := circuit.Load(path)
			if err != nil {
				return err
			}
			c = loaded
		}

		session, s, err := newSession(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		answer := session.AskQuestion(cmd.Context(), args[0], c)
		printAnswer(answer, session.Err())
		return nil
	},
}

func init() {
	askCmd.Flags().String("circuit", "", "Path to a circuit JSON file to use as context")
	askCmd.Flags().String("level", "", "Experience level: beginner, intermediate, advanced")
}

func printAnswer(answer *gateway.Answer, diagnostic string) {
	fmt.Println(answer.Text)
	fmt.Println()

	fmt.Printf("confidence: %.2f", answer.Validation.Confidence)
	if len(answer.Validation.Sources) > 0 {
		fmt.Printf("  sources: %s", strings.Join(answer.Validation.Sources, ", "))
	}
	fmt.Println()

	if len(answer.Validation.Corrections) > 0 {
		fmt.Println("corrections:")
		for _, c := range answer.Validation.Corrections {
			fmt.Printf("  - %s\n", c)
		}
	}

	if answer.Hallucination {
		fmt.Println("note: this answer was flagged for review")
	}
	if diagnostic != "" {
		fmt.Printf("note: served from local fallback (%s)\n", diagnostic)
	}
}
