package api

import (
	"net/http"

	"go.uber.org/zap"
)

type route struct {
	pattern string
	method  string
	handler http.HandlerFunc
}

// routes returns the route table for the server's variant.
func (s *Server) routes() []route {
	rs := []route{
		{"/{$}", http.MethodGet, s.handleHome},
		{"/health", http.MethodGet, s.handleHealth},
		{"/test", http.MethodGet, s.handleTest},
	}
	if !s.variant.Skeleton {
		return rs
	}
	return append(rs,
		route{"/api/cache_status", http.MethodGet, s.handleCacheStatus},
		route{"/api/event", http.MethodPost, s.handleEvent},
		route{"/api/geolocation/stats", http.MethodGet, s.handleGeoStats},
		route{"/api/geolocation/countries", http.MethodGet, s.handleGeoCountries},
		route{"/api/geolocation/cities", http.MethodGet, s.handleGeoCities},
		route{"/api/scanner_status", http.MethodGet, s.handleScannerStatus},
	)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, homeFromEnv(s.variant, s.env.Snapshot(), s.clock.Now()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthFromEnv(s.env.Snapshot(), s.clock.Now()))
}

func (s *Server) handleTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, testFromEnv(s.variant, s.env.Snapshot(), s.clock.Now()))
}

// Skeleton placeholders. These never carry data.

func (s *Server) handleCacheStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CacheStatusResponse{
		Status:     StatusSkeleton,
		StockCount: 0,
		AgeMinutes: 0.0,
		Message:    "Cache not available in skeleton mode",
	})
}

func (s *Server) handleGeoStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GeoStatsResponse{
		Status:     StatusSkeleton,
		Countries:  []GeoBucket{},
		Cities:     []GeoBucket{},
		Regions:    []GeoBucket{},
		TotalStats: GeoTotals{},
	})
}

func (s *Server) handleGeoCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CountriesResponse{Status: StatusSkeleton, Countries: []GeoBucket{}})
}

func (s *Server) handleGeoCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CitiesResponse{Status: StatusSkeleton, Cities: []GeoBucket{}})
}

func (s *Server) handleScannerStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ScannerStatusResponse{
		Status:  StatusSkeleton,
		Running: false,
		Message: "Scanner not running in skeleton mode",
	})
}

// handleEvent validates an analytics event, logs it and discards it.
// Method: POST
// Request: any JSON object with an "event" key
// Response (200): EventResponse
// Errors:
//   - 400 for a non-JSON content type or a missing "event" field
//   - 500 for any other failure; detail is logged only
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBytes)

	res := readEvent(r)
	reqID := zap.String("request_id", RequestID(r.Context()))
	switch res.status {
	case http.StatusOK:
		s.metrics.observeEvent(outcomeAccepted)
		s.logger.Info("analytics event received",
			zap.Any("event", res.event.Type()),
			zap.Int("fields", len(res.event)),
			reqID,
		)
		writeJSON(w, http.StatusOK, EventResponse{Status: StatusOK, EventType: res.event.Type()})
	case http.StatusBadRequest:
		s.metrics.observeEvent(outcomeRejected)
		s.logger.Warn("analytics event rejected", zap.Error(res.err), reqID)
		writeJSON(w, res.status, APIError{Error: res.reason()})
	default:
		s.metrics.observeEvent(outcomeFailed)
		s.logger.Error("analytics event failed", zap.Error(res.err), reqID)
		writeJSON(w, http.StatusInternalServerError, APIError{Error: reasonInternal})
	}
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, APIError{Error: "Not found"})
}
