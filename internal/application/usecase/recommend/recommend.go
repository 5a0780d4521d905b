package recommend

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/smartshop/api/internal/application/service"
	"github.com/smartshop/api/internal/domain/product"
	"github.com/smartshop/api/internal/domain/recommend"
	"github.com/smartshop/api/pkg/logger"
)

type RecommendUseCase struct {
	engine *recommend.Engine
	cache  service.RecommendationCache
	logger logger.Logger
}

func NewRecommendUseCase(engine *recommend.Engine, cache service.RecommendationCache, log logger.Logger) *RecommendUseCase {
	return &RecommendUseCase{
		engine: engine,
		cache:  cache,
		logger: log,
	}
}

type RecommendInput struct {
	UserID string
	Limit  int
}

type RecommendOutput struct {
	Products []product.Product
}

var tracer = otel.Tracer("recommend_usecase")

func (uc *RecommendUseCase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	ctx, span := tracer.Start(ctx, "Execute")
	defer span.End()
	span.SetAttributes(attribute.String("user_id", input.UserID), attribute.Int("limit", input.Limit))

	if items, ok := uc.cache.Get(ctx, input.UserID, input.Limit); ok {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return &RecommendOutput{Products: items}, nil
	}

	items := uc.engine.Recommendations(input.UserID, input.Limit)
	uc.cache.Set(ctx, input.UserID, input.Limit, items)

	uc.logger.Debug("Computed recommendations", zap.String("user_id", input.UserID), zap.Int("count", len(items)))
	return &RecommendOutput{Products: items}, nil
}
