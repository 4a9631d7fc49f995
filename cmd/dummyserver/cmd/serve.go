package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joeydtaylor/steeze-dummy/pkg/manifest"
	"github.com/joeydtaylor/steeze-dummy/pkg/server"
	"github.com/joeydtaylor/steeze-dummy/pkg/serverfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type serveFlags struct {
	Host          string
	Port          int
	Sleep         time.Duration
	MetricsListen string
}

func newServeCmd(configPath *string) *cobra.Command {
	var f serveFlags

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the server until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var s *server.Server
			app := fx.New(
				serverfx.Module(
					serverfx.WithConfigPath(*configPath),
					serverfx.WithOverride(f.apply(cmd)),
				),
				fx.Populate(&s),
			)
			if err := app.Err(); err != nil {
				return err
			}

			startCtx, cancel := context.WithTimeout(ctx, app.StartTimeout())
			defer cancel()
			if err := app.Start(startCtx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "listening on %s\n", s.URL())

			<-ctx.Done()

			stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
			defer cancelStop()
			return app.Stop(stopCtx)
		},
	}
	c.Flags().StringVar(&f.Host, "host", "", "Bind host")
	c.Flags().IntVar(&f.Port, "port", 0, "Bind port (0 picks a free one)")
	c.Flags().DurationVar(&f.Sleep, "sleep", 0, "How long /sleep stalls")
	c.Flags().StringVar(&f.MetricsListen, "metrics-listen", "", "Admin listener for /metrics and /ping")
	return c
}

// apply copies only the flags the user actually set onto the config.
func (f *serveFlags) apply(cmd *cobra.Command) func(*manifest.Config) {
	return func(cfg *manifest.Config) {
		fl := cmd.Flags()
		if fl.Changed("host") {
			cfg.Server.Host = f.Host
		}
		if fl.Changed("port") {
			cfg.Server.Port = f.Port
		}
		if fl.Changed("sleep") {
			cfg.Handlers.Sleep = f.Sleep.String()
		}
		if fl.Changed("metrics-listen") {
			cfg.Metrics.Listen = f.MetricsListen
		}
	}
}
