package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clinicore/hospital/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("SEARCH_HORIZON_DAYS", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "hospital.json", cfg.DataFile)
	require.Equal(t, config.DefaultSearchHorizonDays, cfg.SearchHorizonDays)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DATA_FILE", "/tmp/reg.json")
	t.Setenv("SEARCH_HORIZON_DAYS", "14")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "/tmp/reg.json", cfg.DataFile)
	require.Equal(t, 14, cfg.SearchHorizonDays)
}

func TestLoad_RejectsNonPositiveHorizon(t *testing.T) {
	t.Setenv("SEARCH_HORIZON_DAYS", "0")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_IgnoresMalformedHorizon(t *testing.T) {
	t.Setenv("SEARCH_HORIZON_DAYS", "soon")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, config.DefaultSearchHorizonDays, cfg.SearchHorizonDays)
}
