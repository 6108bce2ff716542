package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ucb-pesa/pesa-dashboard/internal/config"
	"github.com/ucb-pesa/pesa-dashboard/internal/server"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		serverConfigPath string
		address          string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg, err := server.LoadConfig(serverConfigPath)
			if err != nil {
				return err
			}
			if address != "" {
				serverCfg.Address = address
			}

			// Server logging settings replace the application ones when set;
			// the CLI level still wins.
			logger := a.logger
			if serverCfg.Logging != (config.LoggingConfig{}) {
				logger, err = initializeLogger(serverCfg.Logging, a.logLevel)
				if err != nil {
					return err
				}
				defer func() { _ = logger.Sync() }()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting dashboard server",
				zap.String("op", "main.serve"),
				zap.String("address", serverCfg.Address),
				zap.String("version", version),
			)
			return server.Run(ctx, logger, serverCfg, server.NewHandler(logger, a.conf, version), nil)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flags.StringVar(&address, "address", "", "listen address override (default from server configuration)")
	return cmd
}
