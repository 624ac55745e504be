package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt := cli.MustFromContext(cmd.Context())
		creds := rt.Services.Credentials()

		token, ok := creds.AccessToken()
		if !ok {
			return fmt.Errorf("not logged in")
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Println("Access credential present")
		if _, ok := creds.RefreshToken(); ok {
			pterm.Info.Println("Refresh credential present")
		} else {
			pterm.Warning.Println("No refresh credential; the session cannot outlive the access token")
		}

		// Expiry peek only; the token is opaque to the session layer and
		// the signature is the server's business.
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
			if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
				if time.Now().After(exp.Time) {
					pterm.Warning.Printf("Access token expired at %s (will refresh on next request)\n", exp.Format(time.RFC1123))
				} else {
					pterm.Info.Printf("Access token expires at %s\n", exp.Format(time.RFC1123))
				}
			}
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				pterm.Info.Printf("Subject: %s\n", sub)
			}
		}
		return nil
	},
}
