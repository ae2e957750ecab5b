package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Equal(t, &Config{}, cfg)
}

func TestLoadConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	original := &Config{
		Server: ServerConfig{Address: ":9090", ShutdownTimeoutSeconds: 5},
		Solver: SolverConfig{
			ScheduleTimeLimitSeconds: 15,
			MakespanWeight:           2,
			TardinessWeight:          3,
			CoarseAllocation:         true,
		},
		Logging: LoggingConfig{Level: "debug"},
	}
	require.NoError(t, SaveConfig(original, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, DebugLevel, ParseLogLevel("debug"))
	require.Equal(t, InfoLevel, ParseLogLevel("info"))
	require.Equal(t, WarnLevel, ParseLogLevel("warn"))
	require.Equal(t, ErrorLevel, ParseLogLevel("error"))
	require.Equal(t, InfoLevel, ParseLogLevel(""))
	require.Equal(t, InfoLevel, ParseLogLevel("verbose"))
}
