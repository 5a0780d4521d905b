package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/smartshop/api/internal/domain/profile"
	"github.com/smartshop/api/pkg/logger"
)

type ClearSearchHistoryUseCase struct {
	profiles *profile.Store
	logger   logger.Logger
}

func NewClearSearchHistoryUseCase(profiles *profile.Store, log logger.Logger) *ClearSearchHistoryUseCase {
	return &ClearSearchHistoryUseCase{profiles: profiles, logger: log}
}

type ClearSearchHistoryInput struct {
	UserID string
}

type ClearSearchHistoryOutput struct {
	Cleared bool
}

// Execute resets the user's search history only. Browsing and purchase
// history keep feeding recommendations.
func (uc *ClearSearchHistoryUseCase) Execute(ctx context.Context, input ClearSearchHistoryInput) (*ClearSearchHistoryOutput, error) {
	cleared := uc.profiles.ClearSearchHistory(input.UserID)
	if cleared {
		uc.logger.Info("Cleared search history", zap.String("user_id", input.UserID))
	}
	return &ClearSearchHistoryOutput{Cleared: cleared}, nil
}
