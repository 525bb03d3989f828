package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRoot_FlagWins(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, "/explicit", resolveRoot("/explicit"))
}

func TestResolveRoot_DefaultWithoutConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, ".", resolveRoot(""))
}

func TestResolveRoot_FromConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(".resindex", 0o755))
	require.NoError(t, os.WriteFile(".resindex/config.yaml", []byte("version: \"1\"\nroot: ./lib\ntool_log: logs/tools.jsonl\ncache_size: 256\n"), 0o644))

	assert.Equal(t, "./lib", resolveRoot(""))
	assert.Equal(t, "logs/tools.jsonl", resolveToolLog(""))
	assert.Equal(t, 256, resolveCacheSize())
}

func TestResolveToolLog_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.Equal(t, "", resolveToolLog(""))
}

func TestLoadProjectConfig_InvalidYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(".resindex", 0o755))
	require.NoError(t, os.WriteFile(".resindex/config.yaml", []byte("root: [unclosed"), 0o644))

	_, err := loadProjectConfig()
	assert.Error(t, err)
}

func TestFlagValue(t *testing.T) {
	args := []string{"--root", "/lib", "--watch"}
	assert.Equal(t, "/lib", flagValue(args, "--root"))
	assert.Equal(t, "", flagValue(args, "--missing"))
	assert.True(t, hasFlag(args, "--watch"))
	assert.False(t, hasFlag(args, "--auto"))
}
