package inventory

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Show current stock levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/ingredients"); err != nil {
			return err
		}

		levels, err := rt.Services.Inventory.ListStock(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INGREDIENT\tQUANTITY (ML)\tUPDATED")
		for _, s := range levels {
			fmt.Fprintf(w, "%d\t%d\t%s\n", s.IngredientID, s.QuantityML, s.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
