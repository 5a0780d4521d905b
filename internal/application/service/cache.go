package service

import (
	"context"

	"github.com/smartshop/api/internal/domain/product"
)

// RecommendationCache fronts the engine with a per-user, per-limit cached
// recommendation list. A failed lookup is a miss, never an error; the engine
// is always able to recompute.
type RecommendationCache interface {
	Get(ctx context.Context, userID string, limit int) ([]product.Product, bool)
	Set(ctx context.Context, userID string, limit int, items []product.Product)
	Invalidate(ctx context.Context, userID string)
}
