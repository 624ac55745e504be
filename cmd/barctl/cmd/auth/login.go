package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var (
	username string
	password string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the bartender app",
	Long: `Authenticates against the auth service and stores the credential pair
locally. Missing flags are prompted for interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())

		var err error
		if username == "" {
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		if password == "" {
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		if err := rt.Services.Session.Login(cmd.Context(), username, password); err != nil {
			// Login failures stay on this "view": surface the server
			// message inline, no redirect.
			sess := rt.Services.Session.Current()
			pterm.Error.Printf("Login failed: %s\n", sess.LastError)
			return err
		}

		sess := rt.Services.Session.Current()
		pterm.Success.Printf("Logged in as %s (%s)\n", sess.User.Username, sess.User.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
}
