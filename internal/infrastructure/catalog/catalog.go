// Package catalog provides the static, read-only product catalog.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Catalog is an in-memory product list. It is never mutated after construction,
// so concurrent readers need no locking.
type Catalog struct {
	products []domain.Product
}

// New creates a catalog holding the given products in the given order
func New(products []domain.Product) *Catalog {
	owned := make([]domain.Product, len(products))
	copy(owned, products)
	return &Catalog{products: owned}
}

// NewReference creates a catalog with the built-in reference products
func NewReference() *Catalog {
	return &Catalog{products: ReferenceProducts()}
}

// GetAll returns every product in declaration order.
// The returned slice is a copy; the products themselves must be treated as read-only.
func (c *Catalog) GetAll() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products in the catalog
func (c *Catalog) Len() int {
	return len(c.products)
}

// LoadFile reads a JSON array of products from disk and validates it
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: could not parse %s: %v", domain.ErrInvalidCatalog, path, err)
	}

	if err := Validate(products); err != nil {
		return nil, err
	}

	return New(products), nil
}

// Validate checks struct-level constraints and id uniqueness
func Validate(products []domain.Product) error {
	validate := validator.New()
	seen := make(map[string]bool, len(products))

	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return fmt.Errorf("%w: product %d (%q): %v", domain.ErrInvalidCatalog, i, p.ID, err)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate product id %q", domain.ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = true
	}

	return nil
}
