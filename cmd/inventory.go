package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mai/internal/inventory"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Inspect and validate inventory files",
}

var inventoryShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active inventory's statements and categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := loadInventory()
		if err != nil {
			return err
		}
		printInventory(cmd.OutOrStdout(), inv, perPage(inv))
		return nil
	},
}

var inventoryValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an inventory file for errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inv, err := inventory.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d statements, %d categories)\n",
			args[0], inv.NumQuestions(), len(inv.Categories))
		return nil
	},
}

func printInventory(w io.Writer, inv *inventory.Inventory, perPage int) {
	fmt.Fprintf(w, "%s (%s, schema %s)\n", inv.Title, inv.Name, inv.SchemaVersion)
	fmt.Fprintf(w, "%d statements, %d per page, chart max %d\n\n", inv.NumQuestions(), perPage, inv.ChartMax)

	for _, q := range inv.Questions {
		fmt.Fprintf(w, "%3d. %s\n", q.ID+1, q.Statement)
		if q.Translation != "" {
			fmt.Fprintf(w, "     %s\n", q.Translation)
		}
		if labels := inv.CategoriesOf(q.ID); len(labels) > 0 {
			fmt.Fprintf(w, "     [%s]\n", strings.Join(labels, ", "))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Categories")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, c := range inv.Categories {
		fmt.Fprintf(w, "%s (%d)\n", c.Label, len(c.Members))
	}
}

func init() {
	inventoryCmd.AddCommand(inventoryShowCmd)
	inventoryCmd.AddCommand(inventoryValidateCmd)
}
