package main

import (
	pkg "SeatShuffler/pkg/routes"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API for the web client",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.GeneratedKey {
				logger.Warn("JWT_KEY not set, using a random key; tokens will not survive a restart")
			}
			app := fx.New(
				fx.Supply(cfg, logger),
				fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: log.Named("fx")}
				}),
				pkg.EchoModules,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	rootCmd.AddCommand(serveCmd)
}
