package cmd

import (
	"os/signal"
	"syscall"

	"golang-devtools/internal/adapter/api"
	"golang-devtools/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var listenFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve every tool over an HTTP JSON API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listenFlag != "" {
			cfg.Server.Listen = listenFlag
		}

		logger := logging.WithComponent("serve")
		logger.WithField("config_file", configFlag).Info("Starting API server")

		server, err := api.NewServer(cfg, newGeoReporter(cfg), newQRDownloader(cfg), newInterfaceInspector())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := server.Run(ctx); err != nil {
			return err
		}
		logger.Info("API server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenFlag, "listen", "l", "", "Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
