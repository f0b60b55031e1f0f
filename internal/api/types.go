package api

// Public JSON types returned by the API. Field tags are the wire contract
// shared with the existing deployment checks.

// Status values used across responses.
const (
	StatusSuccess  = "success"
	StatusHealthy  = "healthy"
	StatusSkeleton = "skeleton"
	StatusOK       = "ok"
	StatusError    = "error"
)

// HomeResponse is the payload for GET /.
type HomeResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// HealthResponse is the payload for GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	PythonVersion string `json:"python_version"`
	Port          string `json:"port"`
}

// TestResponse is the payload for GET /test.
type TestResponse struct {
	AppName       string `json:"app_name"`
	PythonVersion string `json:"python_version"`
	FlaskEnv      string `json:"flask_env"`
	Port          string `json:"port"`
	Timestamp     string `json:"timestamp"`
}

// CacheStatusResponse is the placeholder for GET /api/cache_status.
type CacheStatusResponse struct {
	Status     string  `json:"status"`
	StockCount int     `json:"stock_count"`
	AgeMinutes float64 `json:"age_minutes"`
	Message    string  `json:"message"`
}

// EventResponse acknowledges POST /api/event. EventType echoes the
// submitted "event" value unchanged.
type EventResponse struct {
	Status    string `json:"status"`
	EventType any    `json:"event_type"`
}

// GeoBucket is one row of a geolocation breakdown. The skeleton never
// produces any.
type GeoBucket struct {
	Name   string `json:"name"`
	Visits int    `json:"visits"`
}

// GeoTotals aggregates visitor counts.
type GeoTotals struct {
	UniqueVisitors int `json:"unique_visitors"`
	TotalVisits    int `json:"total_visits"`
}

// GeoStatsResponse is the placeholder for GET /api/geolocation/stats.
type GeoStatsResponse struct {
	Status     string      `json:"status"`
	Countries  []GeoBucket `json:"countries"`
	Cities     []GeoBucket `json:"cities"`
	Regions    []GeoBucket `json:"regions"`
	TotalStats GeoTotals   `json:"total_stats"`
}

// CountriesResponse is the placeholder for GET /api/geolocation/countries.
type CountriesResponse struct {
	Status    string      `json:"status"`
	Countries []GeoBucket `json:"countries"`
}

// CitiesResponse is the placeholder for GET /api/geolocation/cities.
type CitiesResponse struct {
	Status string      `json:"status"`
	Cities []GeoBucket `json:"cities"`
}

// ScannerStatusResponse is the placeholder for GET /api/scanner_status.
type ScannerStatusResponse struct {
	Status  string `json:"status"`
	Running bool   `json:"running"`
	Message string `json:"message"`
}

// APIError is the standard error payload.
type APIError struct {
	Error string `json:"error"`
}
