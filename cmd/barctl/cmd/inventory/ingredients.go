package inventory

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "List ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/ingredients"); err != nil {
			return err
		}

		all, err := rt.Services.Inventory.ListIngredients(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPACKAGE (ML)\tCOST (CENTS)")
		for _, ing := range all {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", ing.ID, ing.Name, ing.Category, ing.PackageSizeML, ing.PackageCostCents)
		}
		return w.Flush()
	},
}
