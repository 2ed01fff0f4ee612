package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticelabs/go-lattice/pow"
)

func writeConfig(t *testing.T, text string) string {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(text), 0600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	threshold, err := cfg.Threshold()
	require.NoError(t, err)
	assert.Equal(t, pow.DefaultThreshold, threshold)
	assert.Equal(t, "xrb_", cfg.AddressPrefix)
	assert.Empty(t, cfg.LogFilePath())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{"DataDir":"/var/lattice","AddressPrefix":"nano_","LogFile":"glattice.log"}`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nano_", cfg.AddressPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "ffffffc000000000", cfg.WorkThreshold)
	assert.Equal(t, filepath.Join("/var/lattice", "glattice.log"), cfg.LogFilePath())

	cfg.LogFile = "/tmp/other.log"
	assert.Equal(t, "/tmp/other.log", cfg.LogFilePath())
}

func TestLoadInvalid(t *testing.T) {
	cases := map[string]string{
		"syntax":    `{"LogLevel":`,
		"level":     `{"LogLevel":"loud"}`,
		"prefix":    `{"AddressPrefix":"vite_"}`,
		"threshold": `{"WorkThreshold":"work"}`,
	}
	for name, text := range cases {
		_, err := Load(writeConfig(t, text))
		assert.Error(t, err, name)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
