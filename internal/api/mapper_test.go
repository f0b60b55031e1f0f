package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sanverite/screener-stub/internal/config"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 9, 14, 30, 5, 123456000, time.UTC), "2024-03-09T14:30:05.123456"},
		{time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC), "2024-03-09T14:30:05"},
		{time.Date(2024, 3, 9, 14, 30, 5, 999, time.UTC), "2024-03-09T14:30:05"},
		{time.Date(2024, 3, 9, 14, 30, 5, 1000, time.UTC), "2024-03-09T14:30:05.000001"},
		{time.Date(2024, 3, 9, 14, 30, 5, 0, time.FixedZone("X", 3600)), "2024-03-09T14:30:05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.in))
	}
}

func TestMappers(t *testing.T) {
	env := config.Snapshot{Mode: "production", RuntimeVersion: "3.12.1", Port: "8080"}

	home := homeFromEnv(Skeleton, env, fixedNow)
	assert.Equal(t, StatusSuccess, home.Status)
	assert.Equal(t, Skeleton.HomeMessage, home.Message)
	assert.Equal(t, "production", home.Environment)

	health := healthFromEnv(env, fixedNow)
	assert.Equal(t, StatusHealthy, health.Status)
	assert.Equal(t, "3.12.1", health.PythonVersion)
	assert.Equal(t, "8080", health.Port)

	test := testFromEnv(Minimal, env, fixedNow)
	assert.Equal(t, "minimal-test", test.AppName)
	assert.Equal(t, "production", test.FlaskEnv)
	assert.Equal(t, "2024-03-09T14:30:05.123456", test.Timestamp)
}
