package orders

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order with its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/orders"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		order, err := rt.Services.Orders.GetOrder(cmd.Context(), id)
		if err != nil {
			return err
		}

		pterm.Info.Printf("Order %d: %s (total %d cents)\n", order.ID, order.Status, order.TotalCents)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RECIPE\tQTY\tPRICE (CENTS)\tSTATUS")
		for _, item := range order.Items {
			name := item.RecipeName
			if name == "" {
				name = strconv.FormatInt(item.RecipeID, 10)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, item.Quantity, item.PriceCents, item.Status)
		}
		return w.Flush()
	},
}
