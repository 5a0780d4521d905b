package search

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartshop/api/adapters/event"
	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/internal/domain/profile"
	"github.com/smartshop/api/internal/domain/recommend"
	"github.com/smartshop/api/pkg/apperror"
	"github.com/smartshop/api/pkg/logger"
)

type SearchUseCase struct {
	engine    *recommend.Engine
	profiles  *profile.Store
	publisher event.Publisher
	logger    logger.Logger
}

func NewSearchUseCase(engine *recommend.Engine, profiles *profile.Store, pub event.Publisher, log logger.Logger) *SearchUseCase {
	return &SearchUseCase{
		engine:    engine,
		profiles:  profiles,
		publisher: pub,
		logger:    log,
	}
}

type SearchInput struct {
	UserID    string
	Query     string
	Category  string
	MaxPrice  *float64
	MinRating float64
}

type SearchOutput struct {
	Results []product.Product
}

// Execute runs the text search and, only when it succeeds, records the query
// into the user's search history and publishes the interaction event. A
// rejected query leaves no trace.
func (uc *SearchUseCase) Execute(ctx context.Context, input SearchInput) (*SearchOutput, error) {
	filter := product.Filter{
		Category:  input.Category,
		MaxPrice:  input.MaxPrice,
		MinRating: input.MinRating,
	}

	results, err := uc.engine.Search(input.Query, filter)
	if err != nil {
		if errors.Is(err, product.ErrEmptyQuery) || errors.Is(err, product.ErrNegativeBound) {
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		return nil, apperror.NewInternal("search failed", err)
	}

	uc.profiles.RecordSearch(input.UserID, input.Query)

	go func() {
		ev := interaction.Event{
			ID:         uuid.New(),
			UserID:     input.UserID,
			Type:       interaction.TypeSearch,
			Query:      input.Query,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.publisher.PublishInteraction(context.Background(), ev); err != nil {
			uc.logger.Error("Failed to publish search event", err, zap.String("user_id", input.UserID))
		}
	}()

	return &SearchOutput{Results: results}, nil
}
