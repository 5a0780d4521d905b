package user

import (
	"context"
	"strings"

	"github.com/smartshop/api/internal/application/service"
	"github.com/smartshop/api/internal/domain/profile"
	"github.com/smartshop/api/pkg/apperror"
)

type AddFavoriteCategoryUseCase struct {
	profiles *profile.Store
	cache    service.RecommendationCache
}

func NewAddFavoriteCategoryUseCase(profiles *profile.Store, cache service.RecommendationCache) *AddFavoriteCategoryUseCase {
	return &AddFavoriteCategoryUseCase{profiles: profiles, cache: cache}
}

type AddFavoriteCategoryInput struct {
	UserID   string
	Category string
}

func (uc *AddFavoriteCategoryUseCase) Execute(ctx context.Context, input AddFavoriteCategoryInput) error {
	if strings.TrimSpace(input.Category) == "" {
		return apperror.NewInvalidInput("category is required", nil)
	}
	uc.profiles.AddFavoriteCategory(input.UserID, input.Category)
	uc.cache.Invalidate(ctx, input.UserID)
	return nil
}
