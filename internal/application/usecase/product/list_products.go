package product

import (
	"context"
	"errors"

	domain "github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/pkg/apperror"
)

type ListProductsUseCase struct {
	catalog *domain.Catalog
}

func NewListProductsUseCase(catalog *domain.Catalog) *ListProductsUseCase {
	return &ListProductsUseCase{catalog: catalog}
}

type ListProductsInput struct {
	Category     string
	MaxPrice     *float64
	MinRating    float64
	FeaturedOnly *bool
}

type ListProductsOutput struct {
	Products []domain.Product
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	items, err := uc.catalog.Filter(domain.Filter{
		Category:     input.Category,
		MaxPrice:     input.MaxPrice,
		MinRating:    input.MinRating,
		FeaturedOnly: input.FeaturedOnly,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNegativeBound) {
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		return nil, apperror.NewInternal("product filter failed", err)
	}
	return &ListProductsOutput{Products: items}, nil
}
