package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yourusername/barctl/cmd/barctl/cmd/auth"
	"github.com/yourusername/barctl/cmd/barctl/cmd/inventory"
	"github.com/yourusername/barctl/cmd/barctl/cmd/orders"
	"github.com/yourusername/barctl/cmd/barctl/cmd/pricing"
	"github.com/yourusername/barctl/cmd/barctl/cmd/users"
	"github.com/yourusername/barctl/internal/cli"
	"github.com/yourusername/barctl/internal/config"
	"github.com/yourusername/barctl/internal/credstore"
	"github.com/yourusername/barctl/pkg/sdk"
)

var rootCmd = &cobra.Command{
	Use:   "barctl",
	Short: "Bartender app CLI - session and service client",
	Long: `barctl is the command-line client for the bartender app backend services
(auth, inventory, ordering, pricing). It keeps your session across
invocations and refreshes expired credentials transparently.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zerolog.WarnLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		storage, err := openStorage(cfg)
		if err != nil {
			// Durable storage is best effort: fall back to memory so the
			// command still works, just without a persisted session.
			pterm.Warning.Printf("credential storage unavailable (%v); session will not persist\n", err)
			storage = sdk.NewMemoryStorage()
		}

		services := sdk.New(sdk.Config{
			AuthURL:      cfg.AuthURL,
			InventoryURL: cfg.InventoryURL,
			OrderURL:     cfg.OrderURL,
			PricingURL:   cfg.PricingURL,
			Storage:      storage,
			Logger:       logger,
			OnSessionExpired: func() {
				pterm.Warning.Println("Session expired, please run `barctl auth login` again.")
			},
		})

		ctx := cli.Inject(cmd.Context(), &cli.Runtime{Config: cfg, Services: services})
		cmd.SetContext(ctx)
		return nil
	},
}

func openStorage(cfg *config.Config) (sdk.Storage, error) {
	path := cfg.CredentialsPath
	if path == "" {
		var err error
		path, err = credstore.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return credstore.NewFileStorage(path)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(inventory.InventoryCmd)
	rootCmd.AddCommand(orders.OrdersCmd)
	rootCmd.AddCommand(pricing.PricingCmd)
}
