// Package api hosts the stub HTTP JSON server.
//
// Variants
//
// One Server implementation backs two deployments. Minimal serves /, /health
// and /test. Skeleton adds placeholder routes under /api/ that mimic the
// shape of the future screener endpoints (cache, geolocation, scanner,
// analytics events) but always answer with fixed empty or zero data.
//
// Environment
//
// Handlers read FLASK_ENV, PYTHON_VERSION and PORT through config.Env on every
// request. Nothing is cached between requests.
//
// Server
//
// NewServer wires routes onto a ServeMux and configures timeouts. Start()
// binds the listener and serves in a goroutine; Stop() performs graceful
// shutdown. Middleware assigns a request ID, records Prometheus metrics,
// logs one line per request and converts panics into a JSON 500.
//
// Error Model
//
// Error bodies are {"error": "<reason>"}. Only POST /api/event has defined
// failures: 400 for a non-JSON content type or a missing "event" field, 500
// for anything else. Unknown paths answer 404 and wrong methods 405, both in
// the same shape.
//
// Endpoints
//
//   - GET  /                            service banner
//   - GET  /health                      liveness
//   - GET  /test                        environment report
//   - GET  /api/cache_status            placeholder (skeleton)
//   - POST /api/event                   analytics event intake (skeleton)
//   - GET  /api/geolocation/stats       placeholder (skeleton)
//   - GET  /api/geolocation/countries   placeholder (skeleton)
//   - GET  /api/geolocation/cities      placeholder (skeleton)
//   - GET  /api/scanner_status          placeholder (skeleton)
//   - GET  /metrics                     Prometheus exposition
package api
