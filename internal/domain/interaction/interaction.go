package interaction

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSearch   Type = "search"
	TypeView     Type = "view"
	TypePurchase Type = "purchase"
)

var ErrInvalidType = errors.New("invalid interaction type")

// Event is one recorded user interaction, published to Kafka by the API
// server and persisted by the worker for offline analytics.
type Event struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	Type       Type      `json:"type"`
	ProductID  string    `json:"product_id,omitempty"`
	Query      string    `json:"query,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *Event) Validate() error {
	switch e.Type {
	case TypeSearch, TypeView, TypePurchase:
		return nil
	default:
		return ErrInvalidType
	}
}

type Repository interface {
	Save(ctx context.Context, event *Event) error
}
