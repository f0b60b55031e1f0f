// Package config resolves the server's settings from the process environment.
//
// Two views exist. Load reads the startup settings (listen port, log level,
// shutdown timeout) once and fails fast on malformed values. Env is a
// read-through view of the informational variables reported by the API;
// it is re-queried on every call so that changes to the environment show up
// without a restart.
//
// No command-line flags and no config file are consulted.
package config
