package cli

import (
	"Dinner-For-Five/cmd/config"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, store, err := openStore(ctx, true)
			if err != nil {
				return err
			}
			defer closeStore(store)

			app, cleanup, err := config.NewApp(cfg, store.Repository)
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			go func() {
				<-ctx.Done()
				log.Info("shutting down")
				_ = app.Shutdown()
			}()

			log.Infof("Dinner for 5 running on port %s", cfg.AppPort)
			return app.Listen(fmt.Sprintf(":%s", cfg.AppPort))
		},
	}
}
