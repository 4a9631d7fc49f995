package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects where logs go. The zero value writes nothing.
type Options struct {
	Dir     string
	Level   string
	Console bool
	Files   bool
}

func ensureLogDir(dir string) string {
	if dir == "" {
		dir = "log"
	}
	_ = os.MkdirAll(dir, 0o755)
	return dir
}

// NewLog builds a JSON logger writing to <dir>/<n> (rotated) and/or stdout.
func NewLog(o Options, n string) *zap.Logger {
	level := zap.InfoLevel
	if o.Level != "" {
		if l, err := zapcore.ParseLevel(o.Level); err == nil {
			level = l
		}
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	if o.Files {
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(ensureLogDir(o.Dir), n),
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, level))
	}
	if o.Console {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.Lock(os.Stdout), level))
	}
	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...))
}
