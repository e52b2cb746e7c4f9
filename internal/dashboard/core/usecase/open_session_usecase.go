package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"
	"aid-gap-analyzer/internal/dashboard/core/ports"
)

type OpenSessionUseCase struct {
	repo     ports.SessionRepositoryPort
	settings DatasetSettings
	observer ports.RecomputeObserverPort
	now      func() time.Time
	newID    func() string
}

func NewOpenSessionUseCase(repo ports.SessionRepositoryPort, settings DatasetSettings, observer ports.RecomputeObserverPort) *OpenSessionUseCase {
	return &OpenSessionUseCase{
		repo:     repo,
		settings: settings,
		observer: observerOrNoop(observer),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// WithClock replaces the wall clock used as the dataset's "now".
func (uc *OpenSessionUseCase) WithClock(now func() time.Time) *OpenSessionUseCase {
	uc.now = now
	return uc
}

// Execute generates the session's dataset (the only time it is generated),
// computes the dashboard for the full selection and stores the session.
func (uc *OpenSessionUseCase) Execute(ctx context.Context) (*domain.Session, error) {
	now := uc.now()
	ds := pipeline.GenerateDataset(uc.settings.Seed, uc.settings.RecordCount, uc.settings.WindowDays, now)

	s := domain.NewSession(uc.newID(), ds, now)

	opts := pipeline.Options{RecentLimit: uc.settings.RecentLimit}
	if _, err := recompute(s, domain.FullSelection(), opts, uc.observer, TriggerOpen); err != nil {
		return nil, fmt.Errorf("building initial dashboard: %w", err)
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	return s, nil
}
