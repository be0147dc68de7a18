package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"tiermaker/internal/logging"
	"tiermaker/internal/theme"
)

// FileName is the name of the config file inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version    int                 `toml:"version"`
	Theme      string              `toml:"theme"`       // theme applied at startup
	ImportPath string              `toml:"import_path"` // item file imported at startup
	Themes     map[string][]string `toml:"themes"`      // theme name -> categories
	UISettings UISettings          `toml:"ui"`
	Log        logging.Config      `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmReset   bool `toml:"confirm_reset"`
	ShowCategories bool `toml:"show_categories"`
	WatchImport    bool `toml:"watch_import"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service for the user config directory
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithPath creates a config service bound to path
func NewConfigServiceWithPath(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultPath returns ~/.config/tiermaker/config.toml or the platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tiermaker", FileName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's path.
// A missing file yields the default configuration.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service's path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Fields absent from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Themes = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if len(cfg.Themes) == 0 {
		cfg.Themes = DefaultConfig().Themes
	}
	if cfg.Theme != "" {
		if _, ok := cfg.Themes[cfg.Theme]; !ok {
			return nil, fmt.Errorf("config %s: theme %q is not defined in [themes]", path, cfg.Theme)
		}
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Themes:  theme.DefaultCatalog(),
		UISettings: UISettings{
			ConfirmReset:   true,
			ShowCategories: true,
		},
		Log: logging.Config{
			Level:  "info",
			Format: "text",
		},
	}
}
