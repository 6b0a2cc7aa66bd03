package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every archived result",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return errors.New("this deletes every archived result; re-run with --yes to confirm")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.ResultRepo().Clear(cmd.Context())
		if err != nil {
			return fmt.Errorf("clear results: %w", err)
		}
		logger.Info("archive cleared", "removed", n)
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d result(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
