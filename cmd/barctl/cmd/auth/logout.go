package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and discard stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		rt.Services.Session.Logout()
		pterm.Success.Println("Logged out")
		return nil
	},
}
