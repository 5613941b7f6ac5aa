package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/username/date-picker/internal/server"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve date picker widgets over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			srv, err := server.New(cfg, logger)
			if err != nil {
				return err
			}

			logger.Info("Starting date picker server",
				zap.String("addr", cfg.Server.Addr),
				zap.Duration("session_ttl", cfg.Server.GetSessionTTL()))

			return srv.Run(context.Background())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")

	return cmd
}
