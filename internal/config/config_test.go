package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grdinfo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
	assert.False(t, cfg.Verbose)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, -1, cfg.Precision)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
verbose = true
workers = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, -1, cfg.Precision, "unset keys keep their defaults")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"unknown key", `colour = "red"`, true},
		{"bad level", `log_level = "loud"`, true},
		{"zero workers", `workers = 0`, true},
		{"precision too high", `precision = 40`, true},
		{"syntax error", `workers = `, false},
		{"wrong type", `workers = "many"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalid)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
