package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"aaalens/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP service",
	Long: `Starts the HTTP service. POST {"code": "..."} to /analyze to get a
{"status", "result"} report back.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("starting aaalens",
			zap.String("addr", cfg.Addr()),
			zap.String("model", cfg.LLM.Model))
		return server.New(cfg.Addr(), svc, logger).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
