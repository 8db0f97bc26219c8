package port

import (
	"context"

	"github.com/rafaelleal24/apiweb/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort delivers domain events to subscribers outside the process.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}
