package config

import "os"

// Environment variable names.
const (
	EnvMode            = "FLASK_ENV"
	EnvRuntimeVersion  = "PYTHON_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Fallbacks reported when a variable is unset.
const (
	DefaultMode    = "development"
	DefaultUnknown = "unknown"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// MapLookup returns a LookupFunc backed by a fixed map.
func MapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Env is a read-only, uncached view of the informational variables.
type Env struct {
	lookup LookupFunc
}

// NewEnv wraps lookup. A nil lookup reads the process environment.
func NewEnv(lookup LookupFunc) Env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return Env{lookup: lookup}
}

// Snapshot is the set of values read by one call to Env.Snapshot.
type Snapshot struct {
	Mode           string
	RuntimeVersion string
	Port           string
}

// Lookup returns the raw value for key and whether it was set.
func (e Env) Lookup(key string) (string, bool) {
	if e.lookup == nil {
		return os.LookupEnv(key)
	}
	return e.lookup(key)
}

// Get returns the value of key, or fallback when it is unset.
// A variable set to the empty string is returned as-is.
func (e Env) Get(key, fallback string) string {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return fallback
}

// Mode returns FLASK_ENV or "development".
func (e Env) Mode() string { return e.Get(EnvMode, DefaultMode) }

// RuntimeVersion returns PYTHON_VERSION or "unknown".
func (e Env) RuntimeVersion() string { return e.Get(EnvRuntimeVersion, DefaultUnknown) }

// Port returns PORT verbatim or "unknown".
func (e Env) Port() string { return e.Get(EnvPort, DefaultUnknown) }

// Snapshot reads all informational variables now.
func (e Env) Snapshot() Snapshot {
	return Snapshot{
		Mode:           e.Mode(),
		RuntimeVersion: e.RuntimeVersion(),
		Port:           e.Port(),
	}
}
