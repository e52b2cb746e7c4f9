package usecase

import (
	"context"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/ports"
)

type GetDashboardUseCase struct {
	repo ports.SessionRepositoryPort
}

func NewGetDashboardUseCase(repo ports.SessionRepositoryPort) *GetDashboardUseCase {
	return &GetDashboardUseCase{repo: repo}
}

// Execute returns the last computed dashboard; nothing is recomputed.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, sessionID string) (*domain.Dashboard, error) {
	s, err := loadSession(ctx, uc.repo, sessionID)
	if err != nil {
		return nil, err
	}
	return s.Dashboard(), nil
}
