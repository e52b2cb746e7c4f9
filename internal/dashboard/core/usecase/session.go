package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"
	"aid-gap-analyzer/internal/dashboard/core/ports"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidLimit     = errors.New("invalid limit")
)

const (
	TriggerOpen      = "open"
	TriggerSelection = "selection"
)

// DatasetSettings controls how a session's dataset is generated and how
// large its derived views are.
type DatasetSettings struct {
	Seed        uint64
	RecordCount int
	WindowDays  int
	RecentLimit int
}

func DefaultDatasetSettings() DatasetSettings {
	return DatasetSettings{
		Seed:        pipeline.DefaultSeed,
		RecordCount: pipeline.DefaultRecordCount,
		WindowDays:  pipeline.DefaultWindowDays,
		RecentLimit: pipeline.DefaultRecentLimit,
	}
}

type noopObserver struct{}

func (noopObserver) ObserveRecompute(string, time.Duration, int, error) {}

func observerOrNoop(o ports.RecomputeObserverPort) ports.RecomputeObserverPort {
	if o == nil {
		return noopObserver{}
	}
	return o
}

func loadSession(ctx context.Context, repo ports.SessionRepositoryPort, id string) (*domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidSessionID
	}
	return repo.Get(ctx, id)
}

// recompute runs one filter and aggregate pass for s and reports it.
func recompute(
	s *domain.Session,
	sel domain.Selection,
	opts pipeline.Options,
	observer ports.RecomputeObserverPort,
	trigger string,
) (*domain.Dashboard, error) {
	start := time.Now()
	d, err := s.Recompute(sel, func(ds domain.Dataset, sel domain.Selection) (*domain.Dashboard, error) {
		return pipeline.BuildDashboard(ds, sel, opts)
	})

	filtered := 0
	if d != nil {
		filtered = d.Metrics.RecordCount
	}
	observer.ObserveRecompute(trigger, time.Since(start), filtered, err)

	return d, err
}
