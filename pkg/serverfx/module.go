package serverfx

import (
	"context"
	"net/http"

	"github.com/joeydtaylor/steeze-dummy/pkg/bundlefx"
	"github.com/joeydtaylor/steeze-dummy/pkg/manifest"
	"github.com/joeydtaylor/steeze-dummy/pkg/middleware/logger"
	"github.com/joeydtaylor/steeze-dummy/pkg/server"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// ---------- Options ----------

type Options struct {
	Service    string                   // for logs only
	ConfigPath string                   // manifest path; "" means env or the default file
	Overrides  []func(*manifest.Config) // applied after file and env, e.g. CLI flags
}

type Option func(*Options)

func WithService(s string) Option    { return func(o *Options) { o.Service = s } }
func WithConfigPath(p string) Option { return func(o *Options) { o.ConfigPath = p } }
func WithOverride(fn func(*manifest.Config)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Overrides = append(o.Overrides, fn)
		}
	}
}

func defaultOptions() Options {
	return Options{Service: "dummyserver"}
}

// Module returns the complete Fx option set for one dummy server.
func Module(opts ...Option) fx.Option {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return fx.Options(
		fx.Supply(o),
		fx.Provide(provideConfig),
		// Logger + access log + metrics handler
		bundlefx.Module,
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l}
		}),
		fx.Provide(provideServer),
		fx.Invoke(registerHooks),
	)
}

// ---------- Config ----------

func provideConfig(o Options) (manifest.Config, error) {
	cfg, err := manifest.LoadConfig(o.ConfigPath)
	if err != nil {
		return manifest.Config{}, err
	}
	if len(o.Overrides) == 0 {
		return cfg, nil
	}
	for _, fn := range o.Overrides {
		fn(&cfg)
	}
	return cfg, cfg.Validate()
}

// ---------- Server ----------

type serverDeps struct {
	fx.In

	Config  manifest.Config
	Logger  *zap.Logger
	Access  *logger.Middleware
	Metrics http.Handler `name:"metrics"`
}

func provideServer(d serverDeps) (*server.Server, error) {
	return server.New(d.Config, d.Logger,
		server.WithAccessLogger(d.Access),
		server.WithMetricsHandler(d.Metrics),
	)
}

// ---------- Lifecycle ----------

func registerHooks(lc fx.Lifecycle, o Options, cfg manifest.Config, s *server.Server, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.Start(ctx); err != nil {
				return err
			}
			log.Info("server started",
				zap.String("service", o.Service),
				zap.String("url", s.URL()),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeoutDuration())
			defer cancel()
			return s.Shutdown(ctx)
		},
	})
}
