package port

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// RateLimiterPort reports whether another request under key fits in the current window.
type RateLimiterPort interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
