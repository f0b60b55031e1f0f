package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
)

// ListenHost is the interface the server binds to.
const ListenHost = "0.0.0.0"

// DefaultShutdownTimeout bounds graceful shutdown when SHUTDOWN_TIMEOUT is unset.
const DefaultShutdownTimeout = 5 * time.Second

// Config holds the settings resolved once at startup.
type Config struct {
	Port            int
	Mode            string
	LogLevel        zapcore.Level
	ShutdownTimeout time.Duration
}

// Addr returns the listen address, e.g. "0.0.0.0:5001".
func (c *Config) Addr() string {
	return net.JoinHostPort(ListenHost, strconv.Itoa(c.Port))
}

// Load resolves the startup settings from env. defaultPort is used when PORT
// is unset. Every malformed variable is reported, not just the first.
func Load(env Env, defaultPort int) (*Config, error) {
	cfg := &Config{
		Port:            defaultPort,
		Mode:            env.Mode(),
		LogLevel:        zapcore.InfoLevel,
		ShutdownTimeout: DefaultShutdownTimeout,
	}

	var errs error
	if raw, ok := env.Lookup(EnvPort); ok {
		port, err := parsePort(raw)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			cfg.Port = port
		}
	}
	if raw, ok := env.Lookup(EnvLogLevel); ok && raw != "" {
		lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("config: %s=%q: %w", EnvLogLevel, raw, err))
		} else {
			cfg.LogLevel = lvl
		}
	}
	if raw, ok := env.Lookup(EnvShutdownTimeout); ok && raw != "" {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		switch {
		case err != nil:
			errs = multierr.Append(errs, fmt.Errorf("config: %s=%q: %w", EnvShutdownTimeout, raw, err))
		case d < 0:
			errs = multierr.Append(errs, fmt.Errorf("config: %s=%q: must not be negative", EnvShutdownTimeout, raw))
		default:
			cfg.ShutdownTimeout = d
		}
	}
	if errs != nil {
		return nil, errs
	}
	return cfg, nil
}

// parsePort accepts 0 (kernel-assigned) through 65535.
func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q: not an integer", EnvPort, raw)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("config: %s=%q: out of range 0-65535", EnvPort, raw)
	}
	return port, nil
}
