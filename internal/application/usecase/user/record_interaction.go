package user

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartshop/api/adapters/event"
	"github.com/smartshop/api/internal/application/service"
	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/internal/domain/profile"
	"github.com/smartshop/api/pkg/apperror"
	"github.com/smartshop/api/pkg/logger"
)

// RecordInteractionUseCase appends a view or purchase to the user's history,
// drops the user's cached recommendations and publishes the event. The
// in-memory append is the source of truth; publishing is fire-and-forget.
type RecordInteractionUseCase struct {
	profiles  *profile.Store
	cache     service.RecommendationCache
	publisher event.Publisher
	logger    logger.Logger
}

func NewRecordInteractionUseCase(profiles *profile.Store, cache service.RecommendationCache, pub event.Publisher, log logger.Logger) *RecordInteractionUseCase {
	return &RecordInteractionUseCase{
		profiles:  profiles,
		cache:     cache,
		publisher: pub,
		logger:    log,
	}
}

type RecordInteractionInput struct {
	UserID    string
	ProductID string
	Type      interaction.Type
}

func (uc *RecordInteractionUseCase) Execute(ctx context.Context, input RecordInteractionInput) error {
	if strings.TrimSpace(input.ProductID) == "" {
		return apperror.NewInvalidInput("product id is required", nil)
	}

	switch input.Type {
	case interaction.TypeView:
		uc.profiles.RecordView(input.UserID, input.ProductID)
	case interaction.TypePurchase:
		uc.profiles.RecordPurchase(input.UserID, input.ProductID)
	default:
		return apperror.NewInvalidInput("unsupported interaction type", interaction.ErrInvalidType)
	}

	uc.cache.Invalidate(ctx, input.UserID)

	go func() {
		ev := interaction.Event{
			ID:         uuid.New(),
			UserID:     input.UserID,
			Type:       input.Type,
			ProductID:  input.ProductID,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.PublishInteraction(context.Background(), ev); err != nil {
			uc.logger.Error("Failed to publish interaction event", err,
				zap.String("user_id", input.UserID), zap.String("type", string(input.Type)))
		}
	}()

	return nil
}
