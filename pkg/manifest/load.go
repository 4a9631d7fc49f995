// pkg/manifest/load.go
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Environment overrides, applied after the manifest file.
const (
	EnvConfig        = "DUMMY_SERVER_CONFIG"
	EnvHost          = "DUMMY_SERVER_HOST"
	EnvPort          = "DUMMY_SERVER_PORT"
	EnvSleep         = "DUMMY_SERVER_SLEEP"
	EnvMetricsListen = "DUMMY_SERVER_METRICS_LISTEN"
	EnvLogDir        = "DUMMY_SERVER_LOG_DIR"

	DefaultManifest = "dummy-server.toml"
)

// LoadConfig reads the manifest at path on top of Default, then applies
// environment overrides and validates. A missing file at the default
// location is not an error; a missing explicit path is.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = envOr(EnvConfig, DefaultManifest)
		explicit = os.Getenv(EnvConfig) != ""
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read manifest: %w", err)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes a manifest document on top of Default without touching the
// environment.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overlays DUMMY_SERVER_* variables onto c.
func (c *Config) ApplyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvHost)); v != "" {
		c.Server.Host = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.Server.Port = p
	}
	if v := strings.TrimSpace(os.Getenv(EnvSleep)); v != "" {
		c.Handlers.Sleep = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMetricsListen)); v != "" {
		c.Metrics.Listen = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogDir)); v != "" {
		c.Logging.Dir = v
	}
	return nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
