package product

import (
	"context"

	domain "github.com/smartshop/api/internal/domain/product"
)

type ListCategoriesUseCase struct {
	catalog *domain.Catalog
}

func NewListCategoriesUseCase(catalog *domain.Catalog) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{catalog: catalog}
}

type ListCategoriesOutput struct {
	Categories []string
}

func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesOutput, error) {
	return &ListCategoriesOutput{Categories: uc.catalog.Categories()}, nil
}
