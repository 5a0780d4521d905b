package product

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is the immutable in-memory product store. All query methods return
// copies, are safe for unsynchronized concurrent use and never mutate state.
type Catalog struct {
	products   []Product
	byID       map[string]int
	byCategory map[string][]int
}

// NewCatalog builds a catalog from the loaded product set. Duplicate IDs are
// an invariant violation and fail construction.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products:   make([]Product, len(products)),
		byID:       make(map[string]int, len(products)),
		byCategory: make(map[string][]int),
	}
	copy(c.products, products)

	// Stable base order keeps every query deterministic across restarts.
	sort.Slice(c.products, func(i, j int) bool {
		return c.products[i].ID < c.products[j].ID
	})

	for i, p := range c.products {
		if _, exists := c.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		c.byID[p.ID] = i
		c.byCategory[p.Category] = append(c.byCategory[p.Category], i)
	}
	return c, nil
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

// All returns a snapshot of the full catalog in ID order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks a product up by ID. A miss is not an error; history entries may
// reference products that have since left the catalog.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Filter returns every product satisfying the conjunction of the supplied
// predicates, each exactly once, in ID order. An unknown category yields an
// empty result.
func (c *Catalog) Filter(f Filter) ([]Product, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	candidates := c.products
	if f.Category != "" {
		idxs, ok := c.byCategory[f.Category]
		if !ok {
			return []Product{}, nil
		}
		candidates = make([]Product, len(idxs))
		for i, idx := range idxs {
			candidates[i] = c.products[idx]
		}
	}

	out := make([]Product, 0, len(candidates))
	for _, p := range candidates {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Categories returns the distinct category values present in the catalog,
// sorted for determinism.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.byCategory))
	for cat := range c.byCategory {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// TextSearch matches query case-insensitively as a substring of name or
// description, applies the attribute predicates, and orders results by match
// strength (name hit outranks description hit), then rating descending, then
// ID ascending. An empty or whitespace-only query is a caller error.
func (c *Catalog) TextSearch(query string, f Filter) ([]Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrEmptyQuery
	}
	if err := f.validate(); err != nil {
		return nil, err
	}

	type match struct {
		p        Product
		strength int
	}

	matches := make([]match, 0)
	for _, p := range c.products {
		if !f.matches(p) {
			continue
		}
		strength := 0
		if strings.Contains(strings.ToLower(p.Name), q) {
			strength += 2
		}
		if strings.Contains(strings.ToLower(p.Description), q) {
			strength++
		}
		if strength > 0 {
			matches = append(matches, match{p: p, strength: strength})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].strength != matches[j].strength {
			return matches[i].strength > matches[j].strength
		}
		if matches[i].p.Rating != matches[j].p.Rating {
			return matches[i].p.Rating > matches[j].p.Rating
		}
		return matches[i].p.ID < matches[j].p.ID
	})

	out := make([]Product, len(matches))
	for i, m := range matches {
		out[i] = m.p
	}
	return out, nil
}
