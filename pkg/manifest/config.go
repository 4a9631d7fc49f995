package manifest

import (
	"net"
	"strconv"
	"time"
)

// Config is the top-level manifest.
type Config struct {
	Server   ServerConfig  `toml:"server"`
	Handlers HandlerConfig `toml:"handlers"`
	Logging  LoggingConfig `toml:"logging"`
	Metrics  MetricsConfig `toml:"metrics"`
	Routes   []Route       `toml:"route" validate:"dive"`
}

type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port" validate:"min=0,max=65535"`
	ReadTimeout     string `toml:"read_timeout" validate:"duration"`
	WriteTimeout    string `toml:"write_timeout" validate:"duration"`
	IdleTimeout     string `toml:"idle_timeout" validate:"duration"`
	ShutdownTimeout string `toml:"shutdown_timeout" validate:"duration"`
}

// HandlerConfig tunes the built-in routes.
type HandlerConfig struct {
	Sleep string `toml:"sleep" validate:"duration"` // stall applied by /sleep
}

type LoggingConfig struct {
	Dir     string `toml:"dir"`
	Level   string `toml:"level" validate:"oneof=debug info warn error"`
	Console *bool  `toml:"console"`
	Files   *bool  `toml:"files"`
}

// MetricsConfig enables the admin listener serving /metrics and /ping.
// Empty Listen disables it.
type MetricsConfig struct {
	Listen string `toml:"listen" validate:"omitempty,listen"`
}

// Default returns the configuration used when no manifest is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     "15s",
			WriteTimeout:    "30s",
			IdleTimeout:     "60s",
			ShutdownTimeout: "5s",
		},
		Handlers: HandlerConfig{Sleep: "2s"},
		Logging:  LoggingConfig{Dir: "log", Level: "info", Console: boolPtr(true), Files: boolPtr(true)},
	}
}

// Addr is the host:port the main listener binds.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration     { return mustDuration(s.ReadTimeout) }
func (s ServerConfig) WriteTimeoutDuration() time.Duration    { return mustDuration(s.WriteTimeout) }
func (s ServerConfig) IdleTimeoutDuration() time.Duration     { return mustDuration(s.IdleTimeout) }
func (s ServerConfig) ShutdownTimeoutDuration() time.Duration { return mustDuration(s.ShutdownTimeout) }

func (h HandlerConfig) SleepDuration() time.Duration { return mustDuration(h.Sleep) }

func (l LoggingConfig) ConsoleEnabled() bool { return l.Console == nil || *l.Console }
func (l LoggingConfig) FilesEnabled() bool   { return l.Files == nil || *l.Files }

// mustDuration is only used on validated values; garbage reads as zero.
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	return d
}

func boolPtr(b bool) *bool { return &b }
