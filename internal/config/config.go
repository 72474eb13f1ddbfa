package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"chipselect/internal/domain"
	"chipselect/internal/eventbus"
)

// ErrUnsupportedFormat is returned for catalog files that are neither TOML nor YAML
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Config represents the application configuration
type Config struct {
	Version     int           `toml:"version"`
	Title       string        `toml:"title"`
	Placeholder string        `toml:"placeholder"`
	Preset      []string      `toml:"preset"`       // values selected on start
	CatalogFile string        `toml:"catalog_file"` // optional external catalog, relative to the config file
	Items       []domain.Item `toml:"items"`        // inline catalog, used when CatalogFile is empty
	UISettings  UISettings    `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse          bool `toml:"mouse"`
	ShowHelp       bool `toml:"show_help"`
	MaxPanelHeight int  `toml:"max_panel_height"`
}

// catalogFile is the on-disk shape of a standalone catalog
type catalogFile struct {
	Items []domain.Item `toml:"items" yaml:"items"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Catalog(config *Config) (*domain.Catalog, error)
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
	baseDir  string // directory relative catalog paths resolve against
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "chipselect", "config.toml")
}

// NewConfigService creates a config service reading the per-user config file
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the per-user file, falling back to defaults
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publishLoaded("", cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publishLoaded(cs.filePath, cfg)
	return cfg, nil
}

// Save saves the configuration to the per-user file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	// Lists in the file replace the defaults rather than merging with them
	cfg.Items = nil
	cfg.Preset = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Preset == nil {
		cfg.Preset = append([]string(nil), domain.DefaultPreset...)
	}
	if cfg.Items == nil && cfg.CatalogFile == "" {
		cfg.Items = append([]domain.Item(nil), domain.Frameworks...)
	}
	if cfg.UISettings.MaxPanelHeight <= 0 {
		cfg.UISettings.MaxPanelHeight = DefaultConfig().UISettings.MaxPanelHeight
	}

	cs.baseDir = filepath.Dir(path)
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
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

// Catalog builds the catalog described by the config
func (cs *configService) Catalog(config *Config) (*domain.Catalog, error) {
	if config.CatalogFile == "" {
		return domain.NewCatalog(config.Items)
	}
	path := config.CatalogFile
	if !filepath.IsAbs(path) && cs.baseDir != "" {
		path = filepath.Join(cs.baseDir, path)
	}
	return LoadCatalog(path)
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	if cs.bus == nil {
		return
	}
	cs.bus.Publish(eventbus.ConfigLoadedEvent{
		Path:         path,
		CatalogItems: len(cfg.Items),
	})
}

// LoadCatalog reads a standalone catalog file; the format follows the extension
func LoadCatalog(path string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file catalogFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	catalog, err := domain.NewCatalog(file.Items)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return catalog, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		Title:       "Select frameworks",
		Placeholder: "Select frameworks...",
		Preset:      append([]string(nil), domain.DefaultPreset...),
		Items:       append([]domain.Item(nil), domain.Frameworks...),
		UISettings: UISettings{
			Mouse:          true,
			ShowHelp:       true,
			MaxPanelHeight: 8,
		},
	}
}
