package logger

import (
	"github.com/joeydtaylor/steeze-dummy/pkg/manifest"
	"go.uber.org/zap"
)

// OptionsFrom maps the manifest's [logging] table onto Options.
func OptionsFrom(c manifest.LoggingConfig) Options {
	return Options{
		Dir:     c.Dir,
		Level:   c.Level,
		Console: c.ConsoleEnabled(),
		Files:   c.FilesEnabled(),
	}
}

func ProvideLogger(cfg manifest.Config) *zap.Logger {
	return NewLog(OptionsFrom(cfg.Logging), "system.log")
}

func ProvideLoggerMiddleware(cfg manifest.Config) *Middleware {
	return NewMiddleware(NewLog(OptionsFrom(cfg.Logging), "http-access.log"))
}
