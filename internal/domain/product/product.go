package product

import (
	"context"
	"errors"
)

// Product is one catalog entry. The catalog is loaded once at startup and
// never mutated afterwards.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Featured    bool    `json:"featured"`
}

// MaxRating bounds the rating scale used for score normalization.
const MaxRating = 5.0

var (
	ErrDuplicateID   = errors.New("duplicate product id")
	ErrEmptyQuery    = errors.New("search query must not be empty")
	ErrNegativeBound = errors.New("price and rating bounds must not be negative")
)

// Filter holds the optional attribute predicates applied conjunctively.
// A nil pointer or empty category imposes no constraint.
type Filter struct {
	Category     string
	MaxPrice     *float64
	MinRating    float64
	FeaturedOnly *bool
}

func (f Filter) validate() error {
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return ErrNegativeBound
	}
	if f.MinRating < 0 {
		return ErrNegativeBound
	}
	return nil
}

func (f Filter) matches(p Product) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if p.Rating < f.MinRating {
		return false
	}
	if f.FeaturedOnly != nil && p.Featured != *f.FeaturedOnly {
		return false
	}
	return true
}

// Source loads the product set the catalog is built from.
type Source interface {
	LoadAll(ctx context.Context) ([]Product, error)
}
