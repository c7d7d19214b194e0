package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/sunthewhat/easy-cred-api/common"
	"github.com/sunthewhat/easy-cred-api/type/shared"
	"gopkg.in/yaml.v3"
)

// Candidates are tried in order; the first existing file wins.
var Candidates = []string{"config.yml", "config.yaml", "config.toml"}

// LoadConfig loads path, or the first existing candidate when path is empty.
func LoadConfig(path string) {
	if path != "" {
		config, err := Load(path)
		if err != nil {
			slog.Error("Failed to load config", "path", path, "error", err)
			os.Exit(1)
		}
		common.Config = config
		return
	}
	for _, path := range Candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		config, err := Load(path)
		if err != nil {
			slog.Error("Failed to load config", "path", path, "error", err)
			os.Exit(1)
		}
		common.Config = config
		return
	}
	slog.Error("No config file found", "candidates", Candidates)
	os.Exit(1)
}

// Load decodes a YAML or TOML file, chosen by extension, and validates it.
func Load(path string) (*shared.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	config := new(shared.Config)
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(raw, config); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(raw, config); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}
