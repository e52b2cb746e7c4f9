package usecase

import (
	"context"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/pipeline"
	"aid-gap-analyzer/internal/dashboard/core/ports"
)

type RankOrganizationsInput struct {
	SessionID string
	Metric    string // "deliveries" | "beneficiaries"
}

type RankOrganizationsUseCase struct {
	repo ports.SessionRepositoryPort
}

func NewRankOrganizationsUseCase(repo ports.SessionRepositoryPort) *RankOrganizationsUseCase {
	return &RankOrganizationsUseCase{repo: repo}
}

// Execute ranks organizations within the session's current selection.
func (uc *RankOrganizationsUseCase) Execute(ctx context.Context, in RankOrganizationsInput) ([]domain.OrganizationShare, error) {
	metric, err := domain.ParseMetric(in.Metric)
	if err != nil {
		return nil, err
	}

	s, err := loadSession(ctx, uc.repo, in.SessionID)
	if err != nil {
		return nil, err
	}

	filtered, err := pipeline.ApplyFilters(s.Dataset.Records, s.Selection())
	if err != nil {
		return nil, err
	}
	return pipeline.ComputeOrganizationRanking(filtered, metric)
}

const MaxRecordsLimit = 500

type ListRecordsInput struct {
	SessionID string
	Limit     int // 0 = default
}

type ListRecordsUseCase struct {
	repo         ports.SessionRepositoryPort
	defaultLimit int
}

func NewListRecordsUseCase(repo ports.SessionRepositoryPort, defaultLimit int) *ListRecordsUseCase {
	if defaultLimit <= 0 {
		defaultLimit = pipeline.DefaultRecentLimit
	}
	return &ListRecordsUseCase{repo: repo, defaultLimit: defaultLimit}
}

// Execute lists the newest records of the session's current selection.
func (uc *ListRecordsUseCase) Execute(ctx context.Context, in ListRecordsInput) ([]domain.DeliveryRecord, error) {
	if in.Limit < 0 || in.Limit > MaxRecordsLimit {
		return nil, ErrInvalidLimit
	}
	limit := in.Limit
	if limit == 0 {
		limit = uc.defaultLimit
	}

	s, err := loadSession(ctx, uc.repo, in.SessionID)
	if err != nil {
		return nil, err
	}

	filtered, err := pipeline.ApplyFilters(s.Dataset.Records, s.Selection())
	if err != nil {
		return nil, err
	}
	return pipeline.RecentRecords(filtered, limit), nil
}

type CloseSessionUseCase struct {
	repo ports.SessionRepositoryPort
}

func NewCloseSessionUseCase(repo ports.SessionRepositoryPort) *CloseSessionUseCase {
	return &CloseSessionUseCase{repo: repo}
}

func (uc *CloseSessionUseCase) Execute(ctx context.Context, sessionID string) error {
	if _, err := loadSession(ctx, uc.repo, sessionID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, sessionID)
}
