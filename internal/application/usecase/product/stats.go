package product

import (
	"context"
	"math"

	domain "github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/internal/domain/profile"
)

type StatsUseCase struct {
	catalog  *domain.Catalog
	profiles *profile.Store
}

func NewStatsUseCase(catalog *domain.Catalog, profiles *profile.Store) *StatsUseCase {
	return &StatsUseCase{catalog: catalog, profiles: profiles}
}

type StatsOutput struct {
	TotalProducts    int            `json:"total_products"`
	TotalUsers       int            `json:"total_users"`
	Categories       map[string]int `json:"categories"`
	AverageRating    float64        `json:"average_rating"`
	FeaturedProducts int            `json:"featured_products"`
}

func (uc *StatsUseCase) Execute(ctx context.Context) (*StatsOutput, error) {
	items := uc.catalog.All()

	out := &StatsOutput{
		TotalProducts: len(items),
		TotalUsers:    uc.profiles.Count(),
		Categories:    make(map[string]int),
	}

	ratingSum := 0.0
	for _, p := range items {
		out.Categories[p.Category]++
		ratingSum += p.Rating
		if p.Featured {
			out.FeaturedProducts++
		}
	}
	if len(items) > 0 {
		out.AverageRating = math.Round(ratingSum/float64(len(items))*100) / 100
	}
	return out, nil
}
