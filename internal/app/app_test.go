package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sanverite/screener-stub/internal/api"
	"github.com/sanverite/screener-stub/internal/config"
)

func TestOptions_StartStop(t *testing.T) {
	env := config.NewEnv(config.MapLookup(map[string]string{
		config.EnvPort:     "0",
		config.EnvMode:     "production",
		config.EnvLogLevel: "warn",
	}))

	var srv *api.Server
	app := fxtest.New(t, Options(api.Skeleton, env), fx.Populate(&srv))
	app.RequireStart()
	defer app.RequireStop()

	resp, err := http.Get("http://" + srv.Addr() + "/api/scanner_status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body api.ScannerStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, api.StatusSkeleton, body.Status)
	assert.False(t, body.Running)
}

func TestOptions_InvalidConfig(t *testing.T) {
	env := config.NewEnv(config.MapLookup(map[string]string{config.EnvPort: "not-a-port"}))

	app := fx.New(Options(api.Minimal, env))
	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), config.EnvPort)
}

func TestLoadConfig_VariantDefaultPort(t *testing.T) {
	env := config.NewEnv(config.MapLookup(nil))

	cfg, err := loadConfig(api.Minimal, env)
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Port)

	cfg, err = loadConfig(api.Skeleton, env)
	require.NoError(t, err)
	assert.Equal(t, 5002, cfg.Port)
}
