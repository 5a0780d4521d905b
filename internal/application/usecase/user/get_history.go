package user

import (
	"context"

	"github.com/smartshop/api/internal/domain/profile"
)

type GetSearchHistoryUseCase struct {
	profiles *profile.Store
}

func NewGetSearchHistoryUseCase(profiles *profile.Store) *GetSearchHistoryUseCase {
	return &GetSearchHistoryUseCase{profiles: profiles}
}

type GetSearchHistoryInput struct {
	UserID string
}

type GetSearchHistoryOutput struct {
	Queries []string
}

// Execute returns the user's search history, oldest first. An unknown user
// gets an empty history; the surrounding service must not fail a request just
// because a user has no history yet.
func (uc *GetSearchHistoryUseCase) Execute(ctx context.Context, input GetSearchHistoryInput) (*GetSearchHistoryOutput, error) {
	return &GetSearchHistoryOutput{Queries: uc.profiles.SearchHistory(input.UserID)}, nil
}
