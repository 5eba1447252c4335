package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "skyfaller.yaml"

// localConfigDir is searched after the user directory. Tests point it elsewhere.
var localConfigDir = "configs"

// LoadSkyfaller loads the game configuration.
// Search order: customPath -> ~/.skyfaller/configs/skyfaller.yaml -> ./configs/skyfaller.yaml -> embedded default.
// Files only need to list the keys they change; everything else keeps its default.
func LoadSkyfaller(customPath string) (SkyfallerConfig, error) {
	// A custom path must exist and parse
	if customPath != "" {
		cfg, err := parseFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := parseFile(userCfgPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Try local configs directory
	if cfg, err := parseFile(filepath.Join(localConfigDir, configFile)); err == nil {
		return cfg, cfg.Validate()
	}

	// Use embedded default YAML
	cfg, err := parse(defaultSkyfallerYAML)
	if err != nil {
		return DefaultSkyfallerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads and decodes a YAML file over the defaults.
func parseFile(path string) (SkyfallerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSkyfallerConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the hard-coded defaults.
func parse(data []byte) (SkyfallerConfig, error) {
	cfg := DefaultSkyfallerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSkyfallerConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyfaller", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *SkyfallerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Acceleration *= 0.5
		cfg.Player.Lives = 5
	case DifficultyNormal:
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed *= 2
		cfg.Difficulty.Acceleration *= 2
		cfg.Player.Lives = 2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}

// Marshal encodes a config back to YAML, e.g. for printing the effective settings.
func Marshal(cfg SkyfallerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
