package config

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
)

//go:embed default/config.toml
var configFS embed.FS

func getConfigFilePath() string {
	var configDirs []string

	// useful during development or other non-standard setups.
	if dir := os.Getenv("RIBBON_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return filepath.Join(dir, "config.toml")
		}
	}

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdgConfigDir := os.Getenv("XDG_CONFIG_HOME"); xdgConfigDir != "" {
			configDirs = append(configDirs, xdgConfigDir)
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, configDir)
	}

	for _, dir := range configDirs {
		configPath := filepath.Join(dir, "ribbon", "config.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "ribbon", "config.toml")
	}
	return ""
}

// GetConfigDir returns the directory the user config file is resolved from.
func GetConfigDir() string {
	configFile := getConfigFilePath()
	if configFile == "" {
		return ""
	}
	return filepath.Dir(configFile)
}

func loadDefaultConfig() (*Config, error) {
	data, err := configFS.ReadFile("default/config.toml")
	if err != nil {
		return nil, fmt.Errorf("no embedded default config: %w", err)
	}

	config := &Config{}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("loading embedded default config: %w", err)
	}
	return config, nil
}

// Load returns the embedded defaults overlaid with the user's config file,
// if one exists.
func Load() (*Config, error) {
	config, err := loadDefaultConfig()
	if err != nil {
		return nil, err
	}

	configPath := getConfigFilePath()
	if configPath == "" {
		return config, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("reading %s: %w", configPath, err)
	}
	if err := config.Load(string(data)); err != nil {
		return nil, fmt.Errorf("loading %s: %w", configPath, err)
	}
	return config, nil
}
