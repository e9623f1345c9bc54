package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matthewbaird/catalogview/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the widget preview server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.Preview.Port = port
			}
			b, err := a.builder()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.Run(ctx, server.Config{
				Addr:            a.cfg.Addr(),
				ShutdownTimeout: a.cfg.Preview.ShutdownTimeout,
				Builder:         b,
				Logger:          a.logger,
			})
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides preview.port)")
	return cmd
}
