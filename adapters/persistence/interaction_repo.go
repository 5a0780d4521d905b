package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartshop/api/internal/domain/interaction"
	"github.com/smartshop/api/pkg/apperror"
	"github.com/smartshop/api/pkg/logger"
)

type postgresInteractionRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresInteractionRepo(db *pgxpool.Pool, logger logger.Logger) interaction.Repository {
	return &postgresInteractionRepo{db: db, logger: logger}
}

var psqlInteraction = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Save is idempotent on the event ID so Kafka redeliveries don't duplicate
// rows.
func (r *postgresInteractionRepo) Save(ctx context.Context, ev *interaction.Event) error {
	sql, args, err := psqlInteraction.
		Insert("interaction_events").
		Columns("id", "user_id", "event_type", "product_id", "query", "occurred_at").
		Values(ev.ID, ev.UserID, string(ev.Type), ev.ProductID, ev.Query, ev.OccurredAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build interaction insert", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to save interaction event", err)
	}
	return nil
}
