// Package inventory holds the inventory-service commands.
package inventory

import "github.com/spf13/cobra"

// InventoryCmd is the parent command for inventory queries.
var InventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Query ingredients and stock",
}

func init() {
	InventoryCmd.AddCommand(ingredientsCmd)
	InventoryCmd.AddCommand(stockCmd)
}
