// Package app assembles a stub API server with fx: configuration, logger,
// clock, metrics and the HTTP server, bound to the fx lifecycle.
package app

import (
	"context"

	"github.com/benbjohnson/clock"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/sanverite/screener-stub/internal/api"
	"github.com/sanverite/screener-stub/internal/config"
	"github.com/sanverite/screener-stub/internal/logging"
)

// Options returns the fx options for running variant v against env.
func Options(v api.Variant, env config.Env) fx.Option {
	return fx.Options(
		Module(v, env),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: logger.Named("fx")}
			l.UseLogLevel(zap.DebugLevel)
			return l
		}),
	)
}

// Module provides the server and registers its lifecycle hooks.
func Module(v api.Variant, env config.Env) fx.Option {
	return fx.Module("stubapi",
		fx.Supply(v, env),
		fx.Provide(
			loadConfig,
			newLogger,
			clock.New,
			api.NewMetrics,
			newServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func loadConfig(v api.Variant, env config.Env) (*config.Config, error) {
	return config.Load(env, v.DefaultPort)
}

func newLogger(cfg *config.Config) *zap.Logger {
	return logging.New(nil, cfg.LogLevel)
}

// ServerParams are the dependencies of the API server.
type ServerParams struct {
	fx.In

	Variant api.Variant
	Env     config.Env
	Config  *config.Config
	Logger  *zap.Logger
	Clock   clock.Clock
	Metrics *api.Metrics
}

func newServer(p ServerParams) *api.Server {
	return api.NewServer(api.ServerOptions{
		Addr:            p.Config.Addr(),
		Variant:         p.Variant,
		Env:             p.Env,
		ShutdownTimeout: p.Config.ShutdownTimeout,
		Logger:          p.Logger,
		Clock:           p.Clock,
		Metrics:         p.Metrics,
	})
}

func registerLifecycle(lc fx.Lifecycle, srv *api.Server, cfg *config.Config, v api.Variant, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info("starting server",
				zap.String("app", v.AppName),
				zap.Int("port", cfg.Port),
				zap.String("environment", cfg.Mode),
			)
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			err := srv.Stop(ctx)
			_ = logger.Sync()
			return err
		},
	})
}
