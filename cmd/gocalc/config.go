package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const defaultConfigName = ".gocalc.toml"

type config struct {
	Prompt   string `toml:"prompt"`
	Lenient  bool   `toml:"lenient"`
	LogLevel string `toml:"log_level"`
}

func defaultConfig() *config {
	return &config{
		Prompt:   ">>> ",
		LogLevel: "WARNING",
	}
}

// loadConfig reads path over the defaults. An empty path means the file in
// the home directory, which may be absent.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, defaultConfigName)
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
