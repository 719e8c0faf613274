package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.mines/config.yaml -> ./configs/mines.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		out, err := decode(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return out, nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if out, err := decode(data); err == nil {
				return out, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "mines.yaml")); err == nil {
		if out, err := decode(data); err == nil {
			return out, nil
		}
	}

	out, err := decode(defaultMinesYAML)
	if err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return out, nil
}

// decode unmarshals data over the defaults. Lists present in the file
// replace the default lists entirely.
func decode(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", filename)
}

// Layout is a fixed board read from a YAML file.
//
//	name: corners
//	rows:
//	  - "*...*"
//	  - "....."
//	  - "*...*"
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadLayout reads a fixed board layout. Rows use '*' for mines and '.' for
// safe cells; shape is validated when the board is built.
func LoadLayout(path string) (Layout, error) {
	var l Layout
	data, err := os.ReadFile(path)
	if err != nil {
		return l, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	if len(l.Rows) == 0 {
		return l, fmt.Errorf("layout %s has no rows", path)
	}
	if l.Name == "" {
		l.Name = "layout-" + filepath.Base(path)
	}
	return l, nil
}
