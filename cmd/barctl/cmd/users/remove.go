package users

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		if _, err := rt.RequireRoute(cmd.Context(), "/users"); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		if err := rt.Services.Identity.DeleteUser(cmd.Context(), id); err != nil {
			return err
		}
		pterm.Success.Printf("Deleted user %d\n", id)
		return nil
	},
}
