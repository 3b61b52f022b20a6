package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"os-scheduler/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			st, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			atexit.Register(func() { st.Close() })

			app := api.NewApp(api.NewSchedulerHandlerImpl(cfg, st, logger), os.Stderr)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				logger.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					logger.Error("shutdown", "error", err)
				}
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr, "storage", cfg.StoragePath)
			return app.Listen(addr)
		},
	}
	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")

	return cmd
}
