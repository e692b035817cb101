package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "retain.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	conf, err := readConfig("", slog.Default())
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), conf)
	assert.NoError(t, conf.validate())
}

func TestReadConfigOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
Width = 1024
Title = "Demo"
Shapefile = "states.shp"
`)
	conf, err := readConfig(path, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, 1024, conf.Width)
	assert.Equal(t, 600, conf.Height)
	assert.Equal(t, "Demo", conf.Title)
	assert.Equal(t, "states.shp", conf.Shapefile)
	assert.True(t, conf.Vsync)
}

func TestReadConfigLogsUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	path := writeConfigFile(t, "Colour = \"blue\"\n")

	_, err := readConfig(path, logger)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unknown config key")
	assert.Contains(t, buf.String(), "Colour")
}

func TestReadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "Width = \n"},
		{"wrong type", "Width = \"wide\"\n"},
		{"zero height", "Height = 0\n"},
		{"negative TPS", "TPS = -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readConfig(writeConfigFile(t, tt.content), slog.Default())
			assert.Error(t, err)
		})
	}

	_, err := readConfig(filepath.Join(t.TempDir(), "missing.toml"), slog.Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
