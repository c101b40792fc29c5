package catalog

import (
	"context"
	"fmt"
	"slices"
)

// ProductProvider supplies the initial product list. It is called once at
// startup; the table never asks again.
type ProductProvider interface {
	Products(ctx context.Context) (Products, error)
}

// StaticProvider serves a fixed in-memory list.
type StaticProvider struct {
	Items Products
}

func (p StaticProvider) Products(context.Context) (Products, error) {
	return slices.Clone(p.Items), nil
}

// FileProvider loads products from a file through a throwaway in-memory DuckDB.
type FileProvider struct {
	Path    string
	Options []DuckDBOption
}

func (p FileProvider) Products(ctx context.Context) (Products, error) {
	client, err := NewInMemoryDB(p.Options...)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	ps, err := client.LoadProducts(ctx, p.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", p.Path, err)
	}
	return ps, nil
}

// NewProvider picks the file provider when path is set and the built-in mock
// list otherwise.
func NewProvider(path string, opts ...DuckDBOption) ProductProvider {
	if path == "" {
		return StaticProvider{Items: Mock()}
	}
	return FileProvider{Path: path, Options: opts}
}
