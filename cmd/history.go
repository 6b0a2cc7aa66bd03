package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mai/internal/scoring"
	"github.com/abhisek/mai/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse archived results",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived results, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		results, err := s.ResultRepo().List(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No archived results.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-10s  %-8s  %s\n", "ID", "Completed", "Inventory", "Score", "Answers")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range results {
			score, total := scoring.Totals(r.Scores)
			fmt.Fprintf(out, "%-5d  %-19s  %-10s  %-8s  %s\n",
				r.ID,
				r.CompletedAt.Local().Format("2006-01-02 15:04:05"),
				truncate(r.Inventory, 10),
				fmt.Sprintf("%d/%d", score, total),
				truncate(r.Answers, 24),
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the category scores of one result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.ResultRepo().Get(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get result: %w", err)
		}
		if r == nil {
			return fmt.Errorf("result %d not found", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:         %d\n", r.ID)
		fmt.Fprintf(out, "Session:    %s\n", r.SessionID)
		fmt.Fprintf(out, "Inventory:  %s\n", r.Inventory)
		fmt.Fprintf(out, "Completed:  %s\n", r.CompletedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Answers:    %s\n\n", r.Answers)

		for _, e := range r.Scores {
			fmt.Fprintf(out, "  %s: %d / %d\n", e.Label, e.Score, e.Total)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of results to show")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}
