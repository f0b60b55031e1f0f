// Command skeleton runs the screener skeleton API server: the minimal routes
// plus placeholder /api/ endpoints that return fixed empty data.
//
// Usage:
//
//   PORT=5002 skeleton
//
// Environment is the same as for the minimal command, except PORT defaults
// to 5002.
//
// Additional routes:
//   GET  /api/cache_status
//   POST /api/event
//   GET  /api/geolocation/stats
//   GET  /api/geolocation/countries
//   GET  /api/geolocation/cities
//   GET  /api/scanner_status
package main
