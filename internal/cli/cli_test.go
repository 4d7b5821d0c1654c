package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assert0/aoc24/internal/app"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvWorkers, "")
}

func TestParse(t *testing.T) {
	clearEnv(t)
	var out bytes.Buffer

	cfg, exit, err := Parse([]string{
		"-log-level", "DEBUG", "-workers", "3", "-render", "-facing", "north", "a.txt", "b.txt",
	}, &out)
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, &app.Config{
		Paths:       []string{"a.txt", "b.txt"},
		LogLevel:    "debug",
		Workers:     3,
		StartFacing: "north",
		Render:      true,
	}, cfg)
	assert.Empty(t, out.String())
}

func TestParse_EnvDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvWorkers, "5")

	cfg, _, err := Parse([]string{"maze.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5, cfg.Workers)

	cfg, _, err = Parse([]string{"-workers", "1", "-log-format", "text", "maze.txt"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestParse_ConfigAndServe(t *testing.T) {
	clearEnv(t)

	cfg, exit, err := Parse([]string{"-config", "job.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, "job.hcl", cfg.ConfigPath)
	assert.Empty(t, cfg.Paths)

	cfg, _, err = Parse([]string{"-serve", ":8080"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServeAddr)
}

func TestParse_UsageExits(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "reindeer [options] FILE...")

	out.Reset()
	_, exit, err = Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Contains(t, out.String(), "-facing")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  string
		args []string
	}{
		{"unknown flag", "", []string{"-nope", "a.txt"}},
		{"bad log format", "", []string{"-log-format", "xml", "a.txt"}},
		{"bad log level", "", []string{"-log-level", "loud", "a.txt"}},
		{"bad facing", "", []string{"-facing", "up-ish", "a.txt"}},
		{"negative workers", "", []string{"-workers", "-1", "a.txt"}},
		{"bad workers env", "many", []string{"a.txt"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvWorkers, tc.env)

			_, exit, err := Parse(tc.args, &bytes.Buffer{})
			assert.False(t, exit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}
