package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/priyankac/axon/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect recorded answering-service calls",
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().RecentQueries(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %-20s  %-7s  %-5s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Provider", "Ms", "Conf", "Flagged", "OK")
		fmt.Println(strings.Repeat("─", 96))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			flagged := ""
			if e.Hallucination {
				flagged = "!"
			}
			provider := e.Provider
			if len(provider) > 20 {
				provider = provider[:20]
			}
			fmt.Printf("%-5d  %-19s  %-12s  %-20s  %-7d  %-5.2f  %-7s  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				provider,
				e.LatencyMs,
				e.Confidence,
				flagged,
				ok,
			)
		}
		return nil
	},
}

var eventsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full question/answer for a recorded call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var id int
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		e, err := s.EventRepo().GetQuery(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:         %d\n", e.ID)
		fmt.Printf("Time:       %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:   %s\n", e.Provider)
		fmt.Printf("Purpose:    %s\n", e.Purpose)
		fmt.Printf("Latency:    %dms\n", e.LatencyMs)
		fmt.Printf("Success:    %v\n", e.Success)
		fmt.Printf("Confidence: %.2f\n", e.Confidence)
		fmt.Printf("Flagged:    %v\n", e.Hallucination)
		if e.ErrorMessage != "" {
			fmt.Printf("Error:      %s\n", e.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("QUESTION")
		fmt.Println(sep)
		fmt.Println(e.Question)

		fmt.Println(sep)
		fmt.Println("ANSWER")
		fmt.Println(sep)
		if e.AnswerBody != "" {
			fmt.Println(e.AnswerBody)
		} else {
			fmt.Println("(not captured)")
		}

		return nil
	},
}

var eventsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show call counts and failure rates per purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().UsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-16s  %6s  %9s  %8s  %8s\n",
			"Purpose", "Calls", "Failures", "Flagged", "Avg Ms")
		fmt.Println(strings.Repeat("─", 64))

		var totalCalls, totalFailures, totalFlagged int
		for _, st := range stats {
			fmt.Printf("%-16s  %6d  %9d  %8d  %8d\n",
				st.Purpose, st.Calls, st.Failures, st.Flagged, st.AvgLatencyMs)
			totalCalls += st.Calls
			totalFailures += st.Failures
			totalFlagged += st.Flagged
		}

		fmt.Println(strings.Repeat("─", 64))
		fmt.Printf("%-16s  %6d  %9d  %8d\n",
			"TOTAL", totalCalls, totalFailures, totalFlagged)
		return nil
	},
}

func init() {
	eventsListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	eventsListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. question, mutation, claim-check)")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsViewCmd)
	eventsCmd.AddCommand(eventsStatsCmd)
}
