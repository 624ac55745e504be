package users

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
	"github.com/yourusername/barctl/pkg/sdk"
)

var (
	createUsername string
	createEmail    string
	createPassword string
	createRole     string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/users"); err != nil {
			return err
		}

		user, err := rt.Services.Identity.CreateUser(cmd.Context(), sdk.CreateUserInput{
			Username: createUsername,
			Email:    createEmail,
			Password: createPassword,
			Role:     sdk.Role(createRole),
		})
		if err != nil {
			return err
		}
		pterm.Success.Printf("Created user %s (id %d, role %s)\n", user.Username, user.ID, user.Role)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createUsername, "username", "", "Username")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Email address")
	createCmd.Flags().StringVar(&createPassword, "password", "", "Initial password")
	createCmd.Flags().StringVar(&createRole, "role", "guest", "Role: admin, bartender or guest")
	createCmd.MarkFlagRequired("username") //nolint:errcheck
	createCmd.MarkFlagRequired("email")    //nolint:errcheck
	createCmd.MarkFlagRequired("password") //nolint:errcheck
}
