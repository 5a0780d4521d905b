package interaction

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/pkg/logger"
)

// ProcessInteractionEventUseCase is the worker-side sink: validated events
// from Kafka are persisted for offline analytics.
type ProcessInteractionEventUseCase struct {
	repo   interaction.Repository
	logger logger.Logger
}

func NewProcessInteractionEventUseCase(repo interaction.Repository, log logger.Logger) *ProcessInteractionEventUseCase {
	return &ProcessInteractionEventUseCase{repo: repo, logger: log}
}

func (uc *ProcessInteractionEventUseCase) Execute(ctx context.Context, ev interaction.Event) error {
	if err := ev.Validate(); err != nil {
		// Malformed events are dropped, not retried forever.
		uc.logger.Warn("Skipping invalid interaction event", zap.String("event_id", ev.ID.String()), zap.Error(err))
		return nil
	}

	if err := uc.repo.Save(ctx, &ev); err != nil {
		return fmt.Errorf("save interaction event failed: %w", err)
	}
	return nil
}
