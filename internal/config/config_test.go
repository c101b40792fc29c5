package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"prodtable/internal/catalog"
	"prodtable/internal/columns"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Title != "Product Listing" {
		t.Errorf("Expected title 'Product Listing', got '%s'", cfg.Title)
	}
	if !cfg.Order().Equal(columns.DefaultOrder()) {
		t.Errorf("Expected default order, got %v", cfg.Order())
	}
	if cfg.Policy() != catalog.PolicyClamp {
		t.Errorf("Expected clamp policy, got %s", cfg.Policy())
	}
	if cfg.KeyMappings.PickUp != " " {
		t.Errorf("Expected pick_up on space, got %q", cfg.KeyMappings.PickUp)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to be valid, got %v", err)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("Expected default title, got '%s'", cfg.Title)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("Expected an error for a missing explicit config file")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
title: Spring Catalog
column_order: [name, id, quality, price, description, imageUrl]
column_widths:
  description: 40
key_mappings:
  quit: x
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Title != "Spring Catalog" {
		t.Errorf("Expected title 'Spring Catalog', got '%s'", cfg.Title)
	}
	want := columns.Order{columns.Name, columns.ProductID, columns.Quality, columns.Price, columns.Description, columns.ImageURL}
	if !cfg.Order().Equal(want) {
		t.Errorf("Expected order %v, got %v", want, cfg.Order())
	}
	if cfg.Widths()[columns.Description] != 40 {
		t.Errorf("Expected description width 40, got %d", cfg.Widths()[columns.Description])
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Expected quit key 'x', got %q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.NextColumn != "l" {
		t.Errorf("Expected unset keys to keep defaults, got %q", cfg.KeyMappings.NextColumn)
	}
	if cfg.QualityPolicy != "clamp" {
		t.Errorf("Expected default policy, got %q", cfg.QualityPolicy)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		wantErr bool
	}{
		{
			name:    "valid default config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "order with duplicate",
			mutate:  func(c *Config) { c.ColumnOrder = []string{"id", "id", "price", "quality", "description", "imageUrl"} },
			field:   "column_order",
			wantErr: true,
		},
		{
			name:    "order missing a column",
			mutate:  func(c *Config) { c.ColumnOrder = []string{"id", "name"} },
			field:   "column_order",
			wantErr: true,
		},
		{
			name:    "width too small",
			mutate:  func(c *Config) { c.ColumnWidths = map[string]int{"price": 1} },
			field:   "column_widths",
			wantErr: true,
		},
		{
			name:    "width for unknown column",
			mutate:  func(c *Config) { c.ColumnWidths = map[string]int{"rating": 10} },
			field:   "column_widths",
			wantErr: true,
		},
		{
			name:    "unknown policy",
			mutate:  func(c *Config) { c.QualityPolicy = "round" },
			field:   "quality_policy",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Expected *ConfigError, got %T", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, cfgErr.Field)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "quality_policy: round\n")
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error")
	}
}

func TestLoadCatalogSettings(t *testing.T) {
	path := writeConfig(t, `catalog:
  threads: 2
  memory_limit_mb: 256
  timeout: 5s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := CatalogConfig{Threads: 2, MemoryLimitMB: 256, Timeout: 5 * time.Second}
	if cfg.Catalog != want {
		t.Errorf("Expected %+v, got %+v", want, cfg.Catalog)
	}
	if n := len(cfg.CatalogOptions()); n != 3 {
		t.Errorf("Expected 3 DuckDB options, got %d", n)
	}
}

func TestCatalogOptions(t *testing.T) {
	tests := []struct {
		name    string
		catalog CatalogConfig
		want    int
	}{
		{"default", Default().Catalog, 1},
		{"unset", CatalogConfig{}, 0},
		{"threads only", CatalogConfig{Threads: 4}, 1},
		{"all", CatalogConfig{Threads: 1, MemoryLimitMB: 64, Timeout: time.Second}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Catalog = tt.catalog
			if got := len(cfg.CatalogOptions()); got != tt.want {
				t.Errorf("CatalogOptions() returned %d options; want %d", got, tt.want)
			}
		})
	}
}

func TestValidateCatalogSettings(t *testing.T) {
	tests := []struct {
		name    string
		catalog CatalogConfig
		field   string
	}{
		{"negative threads", CatalogConfig{Threads: -1}, "catalog.threads"},
		{"negative memory", CatalogConfig{MemoryLimitMB: -5}, "catalog.memory_limit_mb"},
		{"negative timeout", CatalogConfig{Timeout: -time.Second}, "catalog.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Catalog = tt.catalog

			var cerr *ConfigError
			if err := cfg.Validate(); !errors.As(err, &cerr) || cerr.Field != tt.field {
				t.Errorf("Expected ConfigError on %s, got %v", tt.field, err)
			}
		})
	}
}
