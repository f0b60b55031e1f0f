package api

import (
	"time"

	"github.com/sanverite/screener-stub/internal/config"
)

const (
	timestampLayout      = "2006-01-02T15:04:05"
	timestampMicroLayout = "2006-01-02T15:04:05.000000"
)

// FormatTimestamp renders t as a zone-less ISO-8601 string in t's own
// location. Microseconds are included only when non-zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampMicroLayout)
}

func homeFromEnv(v Variant, env config.Snapshot, now time.Time) HomeResponse {
	return HomeResponse{
		Status:      StatusSuccess,
		Message:     v.HomeMessage,
		Timestamp:   FormatTimestamp(now),
		Environment: env.Mode,
	}
}

func healthFromEnv(env config.Snapshot, now time.Time) HealthResponse {
	return HealthResponse{
		Status:        StatusHealthy,
		Timestamp:     FormatTimestamp(now),
		PythonVersion: env.RuntimeVersion,
		Port:          env.Port,
	}
}

func testFromEnv(v Variant, env config.Snapshot, now time.Time) TestResponse {
	return TestResponse{
		AppName:       v.AppName,
		PythonVersion: env.RuntimeVersion,
		FlaskEnv:      env.Mode,
		Port:          env.Port,
		Timestamp:     FormatTimestamp(now),
	}
}
