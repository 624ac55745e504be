// Package pricing holds the pricing-service commands.
package pricing

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

// PricingCmd is the parent command for pricing queries.
var PricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Query recipe prices",
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "List recipe prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/recipes"); err != nil {
			return err
		}

		prices, err := rt.Services.Pricing.ListPrices(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RECIPE\tCOST (CENTS)\tPRICE (CENTS)\tCAN MAKE")
		for _, p := range prices {
			name := p.RecipeName
			if name == "" {
				name = fmt.Sprintf("%d", p.RecipeID)
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%t\n", name, p.CostCents, p.PriceCents, p.CanMake)
		}
		return w.Flush()
	},
}

func init() {
	PricingCmd.AddCommand(pricesCmd)
}
