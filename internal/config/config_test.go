package config

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, rest, err := Load(nil, env(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, Config{Theme: "classic", Seed: "none", LogLevel: "info"}, cfg)
	assert.Empty(t, rest)
}

func TestLoadFlagsAndArgs(t *testing.T) {
	args := []string{"-theme", "NEON", "-seed", "demo", "-group", "-dump", "run", "script.txt"}
	cfg, rest, err := Load(args, env(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "demo", cfg.Seed)
	assert.True(t, cfg.Group)
	assert.True(t, cfg.Dump)
	assert.Equal(t, []string{"run", "script.txt"}, rest)
}

func TestEnvOverridesOnlyUnsetFlags(t *testing.T) {
	e := env(map[string]string{
		EnvTheme: "mono",
		EnvSeed:  "demo",
		EnvLog:   "/tmp/packing.log",
	})
	cfg, _, err := Load([]string{"-theme", "neon"}, e, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, "demo", cfg.Seed)
	assert.Equal(t, "/tmp/packing.log", cfg.LogPath)
}

func TestLoadRejectsInvalid(t *testing.T) {
	for _, args := range [][]string{
		{"-theme", "pastel"},
		{"-seed", "full"},
		{"-seed", "demo", "-seed-file", "x.json"},
		{"-color", "-no-color"},
		{"-nope"},
	} {
		_, _, err := Load(args, env(nil), io.Discard)
		assert.Error(t, err, "args %v", args)
	}
}
