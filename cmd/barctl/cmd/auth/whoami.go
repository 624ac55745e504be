package auth

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
	"github.com/yourusername/barctl/pkg/sdk"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current user and accessible areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())

		sess := rt.Services.Session.Initialize(cmd.Context())
		if sess.Status != sdk.StatusAuthenticated {
			return fmt.Errorf("not logged in; run `barctl auth login`")
		}

		user := sess.User
		pterm.Info.Printf("%s <%s> (%s)\n", user.Username, user.Email, user.Role)

		pterm.DefaultSection.Println("Accessible Areas")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH\tROLES")
		for _, route := range sdk.VisibleRoutes(user, sdk.DefaultRoutes) {
			roles := make([]string, len(route.Roles))
			for i, r := range route.Roles {
				roles[i] = string(r)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", route.Name, route.Path, strings.Join(roles, ", "))
		}
		return w.Flush()
	},
}
