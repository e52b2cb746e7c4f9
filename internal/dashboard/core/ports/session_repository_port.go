package ports

import (
	"context"
	"errors"
	"time"

	"aid-gap-analyzer/internal/dashboard/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepositoryPort interface {
	Save(ctx context.Context, s *domain.Session) error
	// Get returns ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// RecomputeObserverPort is told about every filter and aggregate pass.
// trigger is "open" or "selection".
type RecomputeObserverPort interface {
	ObserveRecompute(trigger string, took time.Duration, filteredRecords int, err error)
}
