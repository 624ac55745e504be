package orders

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/orders"); err != nil {
			return err
		}

		all, err := rt.Services.Orders.ListOrders(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tTOTAL (CENTS)\tCREATED")
		for _, o := range all {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", o.ID, o.Status, o.TotalCents, o.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}
