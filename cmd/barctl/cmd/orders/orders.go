// Package orders holds the ordering-service commands.
package orders

import "github.com/spf13/cobra"

// OrdersCmd is the parent command for order queries.
var OrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Query orders",
}

func init() {
	OrdersCmd.AddCommand(listCmd)
	OrdersCmd.AddCommand(getCmd)
}
