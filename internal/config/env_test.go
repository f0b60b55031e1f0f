package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv_Defaults(t *testing.T) {
	env := NewEnv(MapLookup(nil))

	snap := env.Snapshot()
	assert.Equal(t, "development", snap.Mode)
	assert.Equal(t, "unknown", snap.RuntimeVersion)
	assert.Equal(t, "unknown", snap.Port)
}

func TestEnv_EmptyValueIsNotFallback(t *testing.T) {
	env := NewEnv(MapLookup(map[string]string{EnvMode: ""}))
	assert.Equal(t, "", env.Mode())
}

func TestEnv_ReadThrough(t *testing.T) {
	vars := map[string]string{EnvPort: "5001"}
	env := NewEnv(MapLookup(vars))
	assert.Equal(t, "5001", env.Port())

	// Changes after construction are visible on the next read.
	vars[EnvPort] = "6000"
	vars[EnvRuntimeVersion] = "3.11.4"
	assert.Equal(t, "6000", env.Port())
	assert.Equal(t, "3.11.4", env.RuntimeVersion())
}

func TestEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv(EnvMode, "production")
	t.Setenv(EnvPort, "9000")

	env := NewEnv(nil)
	assert.Equal(t, "production", env.Mode())
	assert.Equal(t, "9000", env.Port())

	var zero Env
	assert.Equal(t, "production", zero.Mode())
}
