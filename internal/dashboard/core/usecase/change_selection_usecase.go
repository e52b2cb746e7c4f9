package usecase

import (
	"context"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"
	"aid-gap-analyzer/internal/dashboard/core/ports"
)

type ChangeSelectionInput struct {
	SessionID string
	Selection domain.Selection
}

type ChangeSelectionUseCase struct {
	repo        ports.SessionRepositoryPort
	observer    ports.RecomputeObserverPort
	recentLimit int
}

func NewChangeSelectionUseCase(repo ports.SessionRepositoryPort, recentLimit int, observer ports.RecomputeObserverPort) *ChangeSelectionUseCase {
	return &ChangeSelectionUseCase{
		repo:        repo,
		observer:    observerOrNoop(observer),
		recentLimit: recentLimit,
	}
}

// Execute handles a "selection changed" event: the selection is validated,
// the dashboard recomputed synchronously and stored as the session's current
// view. Saving it again restarts the store's expiry. An invalid selection
// leaves the session untouched.
func (uc *ChangeSelectionUseCase) Execute(ctx context.Context, in ChangeSelectionInput) (*domain.Dashboard, error) {
	if err := in.Selection.Validate(); err != nil {
		return nil, err
	}

	s, err := loadSession(ctx, uc.repo, in.SessionID)
	if err != nil {
		return nil, err
	}

	d, err := recompute(s, in.Selection, pipeline.Options{RecentLimit: uc.recentLimit}, uc.observer, TriggerSelection)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}

	return d, nil
}
