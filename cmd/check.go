package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <claim>",
	Short: "Fact-check a claim about neural circuits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, s, err := newSession(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		v := session.ValidateClaim(cmd.Context(), args[0])

		verdict := "ACCURATE"
		if !v.IsValid {
			verdict = "INACCURATE"
		}
		fmt.Printf("%s (confidence %.2f)\n", verdict, v.Confidence)
		if len(v.Sources) > 0 {
			fmt.Printf("sources: %s\n", strings.Join(v.Sources, ", "))
		}
		if len(v.Corrections) > 0 {
			fmt.Println("corrections:")
			for _, c := range v.Corrections {
				fmt.Printf("  - %s\n", c)
			}
		}
		if diag := session.Err(); diag != "" {
			fmt.Printf("note: served from local fallback (%s)\n", diag)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().String("level", "", "Experience level: beginner, intermediate, advanced")
}
