// Package catalog holds the in-memory product collection and its
// lookup, search, and derivation primitives.
package catalog

import (
	"strings"

	"storefront/domain"
)

// DefaultRelatedLimit caps related-product lists when callers pass no limit.
const DefaultRelatedLimit = 4

// Catalog is the authoritative, read-only product collection for a session.
// Products keep their insertion order; an id index backs point lookups.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

// New builds a catalog from seed records. Every record is validated and ids
// must be unique; the input order is preserved.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := domain.ValidateProduct(p); err != nil {
			return nil, err
		}
		if _, exists := c.byID[p.ID]; exists {
			return nil, domain.NewDuplicateProductError(p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns the full collection in catalog order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByID looks up a product. Absence is a normal outcome, not an error.
func (c *Catalog) ByID(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// ByCategory returns products in the given category, catalog order.
// Category comparison is case-insensitive.
func (c *Catalog) ByCategory(category string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, category, description, or any tag
// contains the query, case-insensitively. An empty query matches everything.
// Matches keep catalog order; there is no relevance ranking.
func (c *Catalog) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.All()
	}
	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if matchesQuery(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Related returns up to limit other products sharing the product's category,
// in catalog order. Unknown ids and limit <= 0 fall back to defaults.
func (c *Catalog) Related(productID string, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	p, ok := c.ByID(productID)
	if !ok {
		return nil
	}
	out := make([]domain.Product, 0, limit)
	for _, other := range c.products {
		if other.ID == p.ID {
			continue
		}
		if strings.EqualFold(other.Category, p.Category) {
			out = append(out, other)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// Categories returns the distinct category names in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range c.products {
		key := strings.ToLower(p.Category)
		if p.Category == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p.Category)
	}
	return out
}
