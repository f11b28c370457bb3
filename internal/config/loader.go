package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

const (
	fileName  = "blockfall.yaml"
	localPath = "configs/" + fileName
)

// Load reads the configuration.
// Search order: customPath -> ~/.blockfall/config.yaml -> ./configs/blockfall.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. An explicit customPath must exist and parse; the other
// locations are skipped silently when missing or malformed.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(localPath); err == nil {
		return cfg, nil
	}

	return Embedded(), nil
}

// Parse decodes YAML over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Embedded returns the configuration shipped inside the binary, or the
// hardcoded Default if it fails to parse.
func Embedded() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "config.yaml")
}
