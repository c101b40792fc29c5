// Package config loads the YAML configuration for the product table.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"prodtable/internal/catalog"
	"prodtable/internal/columns"
	"prodtable/internal/table"

	"gopkg.in/yaml.v3"
)

const DefaultTitle = "Product Listing"

// Config represents the application configuration.
type Config struct {
	Title         string         `yaml:"title"`
	ColumnOrder   []string       `yaml:"column_order"`
	ColumnWidths  map[string]int `yaml:"column_widths"`
	QualityPolicy string         `yaml:"quality_policy"`
	CatalogPath   string         `yaml:"catalog_path"`
	Catalog       CatalogConfig  `yaml:"catalog"`
	LogFile       string         `yaml:"log_file"`
	ShowFooter    bool           `yaml:"show_footer"`
	MarkdownStyle string         `yaml:"markdown_style"` // glamour standard style name
	KeyMappings   KeyMappings    `yaml:"key_mappings"`
}

// CatalogConfig tunes the embedded DuckDB used to read catalog files.
type CatalogConfig struct {
	Threads       int           `yaml:"threads"`         // 0 = DuckDB default
	MemoryLimitMB int           `yaml:"memory_limit_mb"` // 0 = DuckDB default
	Timeout       time.Duration `yaml:"timeout"`         // e.g. "10s"; 0 = none
}

// Default returns the configuration used when no file exists.
func Default() Config {
	order := make([]string, len(columns.All))
	for i, id := range columns.All {
		order[i] = string(id)
	}
	return Config{
		Title:         DefaultTitle,
		ColumnOrder:   order,
		ColumnWidths:  map[string]int{},
		QualityPolicy: string(catalog.PolicyClamp),
		Catalog:       CatalogConfig{Timeout: 30 * time.Second},
		MarkdownStyle: "dark",
		KeyMappings:   DefaultKeyMappings(),
	}
}

// Load reads the config at path. An empty path means the user config
// directory; a missing file yields Default().
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/prodtable/config.yaml, falling back
// to ~/.config/prodtable/config.yaml.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "prodtable", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "prodtable", "config.yaml"), nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.Title == "" {
		c.Title = d.Title
	}
	if len(c.ColumnOrder) == 0 {
		c.ColumnOrder = d.ColumnOrder
	}
	if c.ColumnWidths == nil {
		c.ColumnWidths = map[string]int{}
	}
	if c.QualityPolicy == "" {
		c.QualityPolicy = d.QualityPolicy
	}
	if c.MarkdownStyle == "" {
		c.MarkdownStyle = d.MarkdownStyle
	}
	c.KeyMappings.applyDefaults()
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if _, err := columns.FromStrings(c.ColumnOrder); err != nil {
		return &ConfigError{Field: "column_order", Message: err.Error()}
	}
	for id, w := range c.ColumnWidths {
		if !columns.Known(columns.ID(id)) {
			return &ConfigError{Field: "column_widths", Message: fmt.Sprintf("unknown column %q", id)}
		}
		if w < table.MinWidth || w > table.MaxWidth {
			return &ConfigError{
				Field:   "column_widths",
				Message: fmt.Sprintf("%s width %d not in [%d,%d]", id, w, table.MinWidth, table.MaxWidth),
			}
		}
	}
	if c.Catalog.Threads < 0 {
		return &ConfigError{Field: "catalog.threads", Message: "must not be negative"}
	}
	if c.Catalog.MemoryLimitMB < 0 {
		return &ConfigError{Field: "catalog.memory_limit_mb", Message: "must not be negative"}
	}
	if c.Catalog.Timeout < 0 {
		return &ConfigError{Field: "catalog.timeout", Message: "must not be negative"}
	}
	if !catalog.QualityPolicy(c.QualityPolicy).Valid() {
		return &ConfigError{Field: "quality_policy", Message: fmt.Sprintf("must be clamp or reject, got %q", c.QualityPolicy)}
	}
	return nil
}

// Order returns the configured column order.
func (c Config) Order() columns.Order {
	o, err := columns.FromStrings(c.ColumnOrder)
	if err != nil {
		return columns.DefaultOrder()
	}
	return o
}

// Widths returns the configured width overrides keyed by column.
func (c Config) Widths() map[columns.ID]int {
	out := make(map[columns.ID]int, len(c.ColumnWidths))
	for id, w := range c.ColumnWidths {
		out[columns.ID(id)] = w
	}
	return out
}

// Policy returns the quality policy.
func (c Config) Policy() catalog.QualityPolicy {
	return catalog.QualityPolicy(c.QualityPolicy)
}

// CatalogOptions turns the catalog settings into DuckDB client options.
func (c Config) CatalogOptions() []catalog.DuckDBOption {
	var opts []catalog.DuckDBOption
	if c.Catalog.Threads > 0 {
		opts = append(opts, catalog.WithThreads(c.Catalog.Threads))
	}
	if c.Catalog.MemoryLimitMB > 0 {
		opts = append(opts, catalog.WithMemoryLimit(c.Catalog.MemoryLimitMB))
	}
	if c.Catalog.Timeout > 0 {
		opts = append(opts, catalog.WithTimeout(c.Catalog.Timeout))
	}
	return opts
}

// WithCatalogPath returns a copy of the config reading products from path.
func (c Config) WithCatalogPath(path string) Config {
	c.CatalogPath = path
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// WithColumnOrder returns a copy of the config with a new column order.
func (c Config) WithColumnOrder(o columns.Order) Config {
	ids := make([]string, len(o))
	for i, id := range o {
		ids[i] = string(id)
	}
	c.ColumnOrder = ids
	return c
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
