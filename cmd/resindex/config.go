package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .resindex/config.yaml.
type ProjectConfig struct {
	Version   string `yaml:"version"`
	Root      string `yaml:"root"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	ToolLog   string `yaml:"tool_log"`
	CacheSize int    `yaml:"cache_size"`
}

// loadProjectConfig reads .resindex/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".resindex/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveRoot returns the library root to index, applying the fallback chain:
//  1. Explicit --root flag value
//  2. root from .resindex/config.yaml
//  3. Default: current directory
func resolveRoot(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil && cfg.Root != "" {
		return cfg.Root
	}
	return "."
}

// resolveCacheSize returns the configured file cache size, or 0 so the
// cache falls back to its default.
func resolveCacheSize() int {
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil {
		return cfg.CacheSize
	}
	return 0
}

// resolveToolLog returns the JSONL tool-call log path, or "" for disabled.
func resolveToolLog(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg, err := loadProjectConfig(); err == nil && cfg != nil {
		return cfg.ToolLog
	}
	return ""
}
