package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"micromarket/internal/app"
)

var (
	home       string
	backendURL string
	logLevel   string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "micromarket",
		Short:         "Wholesale produce marketplace CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config{
				Home:       home,
				BackendURL: backendURL,
				LogLevel:   logLevel,
			}.FromEnv()

			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".micromarket")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			w, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			wire = w

			// Restore the persisted session once, before any subcommand.
			// A failure here leaves us logged out but never blocks the command.
			if err := wire.Sessions.Restore(); err != nil {
				wire.Log.Warn().Err(err).Msg("session restore failed")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.micromarket)")
	root.PersistentFlags().StringVar(&backendURL, "backend", "",
		"backend base URL (default "+app.DefaultBackendURL+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		loginCmd(),
		registerCmd(),
		logoutCmd(),
		whoamiCmd(),
		suppliersCmd(),
		productsCmd(),
		cartCmd(),
		seedCmd(),
	)
	return root.Execute()
}
