// Package catalog is the product data source for the table: the Product
// record, the immutable Products list and the providers that supply it.
package catalog

import (
	"errors"
	"fmt"
	"slices"
)

const (
	MinQuality = 1
	MaxQuality = 5
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrQualityOutOfRange = errors.New("quality out of range")
)

// QualityPolicy decides what happens to a quality value outside [1,5].
type QualityPolicy string

const (
	PolicyClamp  QualityPolicy = "clamp"
	PolicyReject QualityPolicy = "reject"
)

// Valid reports whether p is a known policy.
func (p QualityPolicy) Valid() bool {
	return p == PolicyClamp || p == PolicyReject
}

// Product is one row of the table. Quality is the only field edited after load.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quality     int    `json:"quality"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Products is an ordered product list. Methods never modify the receiver.
type Products []Product

// Index returns the position of the product with id, or -1.
func (ps Products) Index(id string) int {
	return slices.IndexFunc(ps, func(p Product) bool { return p.ID == id })
}

// Find returns the product with id.
func (ps Products) Find(id string) (Product, bool) {
	i := ps.Index(id)
	if i < 0 {
		return Product{}, false
	}
	return ps[i], true
}

// WithQuality returns a new list where the product with id carries quality q.
// Every other record is copied unchanged.
func (ps Products) WithQuality(id string, q int, policy QualityPolicy) (Products, error) {
	i := ps.Index(id)
	if i < 0 {
		return ps, fmt.Errorf("%w: %q", ErrProductNotFound, id)
	}

	if q < MinQuality || q > MaxQuality {
		if policy == PolicyReject {
			return ps, fmt.Errorf("%w: %d not in [%d,%d]", ErrQualityOutOfRange, q, MinQuality, MaxQuality)
		}
		q = ClampQuality(q)
	}

	next := slices.Clone(ps)
	next[i].Quality = q
	return next, nil
}

// ClampQuality pins q into [MinQuality, MaxQuality].
func ClampQuality(q int) int {
	return max(MinQuality, min(MaxQuality, q))
}
