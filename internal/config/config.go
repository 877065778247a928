package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the launcher configuration
type Config struct {
	CacheDir      string   `yaml:"cache_dir"`       // Directory for the menu cache file
	SearchDirs    []string `yaml:"search_dirs"`     // Desktop entry directories, first wins on collision
	IconThemeDirs []string `yaml:"icon_theme_dirs"` // Themed icon roots, searched in order
	PixmapDir     string   `yaml:"pixmap_dir"`      // Flat pixmap directory, searched last
	Finder        string   `yaml:"finder"`          // External fuzzy finder binary
	Terminal      string   `yaml:"terminal"`        // Command prefix for Terminal=true apps
}

// configFileName is the name of the config file
const configFileName = "launchbox.yaml"

// Default returns the default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		CacheDir: filepath.Join(homeDir, ".cache", "launchbox"),
		SearchDirs: []string{
			filepath.Join(homeDir, ".local", "share", "applications"),
			"/usr/share/applications",
		},
		IconThemeDirs: []string{
			filepath.Join(homeDir, ".local", "share", "icons"),
			"/usr/share/icons",
		},
		PixmapDir: "/usr/share/pixmaps",
		Finder:    "fzf",
		Terminal:  "x-terminal-emulator -e",
	}
}

// Path returns the path to the config file
func Path() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "launchbox", configFileName)
}

// Load loads the configuration, falling back to defaults when no file exists
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads the configuration from a specific file. Values absent from
// the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to file
func (c *Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo saves the configuration to a specific file
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
