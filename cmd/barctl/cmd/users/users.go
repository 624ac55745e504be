// Package users holds the admin user-management commands.
package users

import "github.com/spf13/cobra"

// UsersCmd is the parent command for user management (admin only).
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage users (admin)",
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(createCmd)
	UsersCmd.AddCommand(removeCmd)
}
