package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meridianbank/navkit/pkg/navkit"
)

var (
	configPath string
	logPath    string

	kit *navkit.Kit
)

func Execute() error {
	root := &cobra.Command{
		Use:   "bankapp",
		Short: "Retail banking app navigation core (terminal harness)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			var err error
			kit, err = navkit.Init(navkit.Options{
				ConfigPath: configPath,
				LogPath:    logPath,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			navkit.Shutdown()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default $BANKAPP_CONFIG)")
	root.PersistentFlags().StringVar(&logPath, "log-path", "", "log file path (overrides config)")

	root.AddCommand(runCmd(), routeCmd(), serveCmd())
	return root.Execute()
}
