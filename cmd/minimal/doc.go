// Command minimal runs the minimal stub API server.
//
// Usage:
//
//   PORT=5001 FLASK_ENV=production minimal
//
// Environment:
//   PORT               listen port on 0.0.0.0 (default 5001)
//   FLASK_ENV          reported environment mode (default "development")
//   PYTHON_VERSION     reported runtime version (default "unknown")
//   LOG_LEVEL          debug, info, warn or error (default info)
//   SHUTDOWN_TIMEOUT   graceful shutdown bound (default 5s)
//
// Routes: GET /, GET /health, GET /test, GET /metrics.
//
// Behavior:
//
// Starts the server and blocks on SIGINT/SIGTERM for graceful shutdown.
// There are no command-line flags.
package main
