package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"aid-gap-analyzer/internal/dashboard/core/domain"
	"aid-gap-analyzer/internal/dashboard/core/usecase"
)

func TestOpenSession_Success(t *testing.T) {
	repo := newFakeSessionRepo()
	obs := &fakeObserver{}

	settings := usecase.DefaultDatasetSettings()
	uc := usecase.NewOpenSessionUseCase(repo, settings, obs).
		WithClock(func() time.Time { return fixedNow })

	s, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uuid.Parse(s.ID); err != nil {
		t.Fatalf("expected uuid session id, got %q", s.ID)
	}
	if len(s.Dataset.Records) != settings.RecordCount {
		t.Fatalf("expected %d records, got %d", settings.RecordCount, len(s.Dataset.Records))
	}
	if !s.Dataset.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("expected dataset generated at %v, got %v", fixedNow, s.Dataset.GeneratedAt)
	}

	d := s.Dashboard()
	if d == nil {
		t.Fatalf("expected initial dashboard")
	}
	if d.Metrics.RecordCount != settings.RecordCount {
		t.Fatalf("initial dashboard should cover the full selection, got %d records", d.Metrics.RecordCount)
	}
	if _, ok := repo.sessions[s.ID]; !ok {
		t.Fatalf("expected session to be saved")
	}

	if len(obs.calls) != 1 || obs.calls[0].trigger != usecase.TriggerOpen {
		t.Fatalf("expected one %q observation, got %+v", usecase.TriggerOpen, obs.calls)
	}
}

func TestOpenSession_SameSeedSameRecords(t *testing.T) {
	repo := newFakeSessionRepo()
	uc := usecase.NewOpenSessionUseCase(repo, usecase.DefaultDatasetSettings(), nil).
		WithClock(func() time.Time { return fixedNow })

	a, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ID == b.ID {
		t.Fatalf("expected distinct session ids")
	}
	for i := range a.Dataset.Records {
		if a.Dataset.Records[i] != b.Dataset.Records[i] {
			t.Fatalf("record %d differs between sessions", i)
		}
	}
}

func TestOpenSession_RepositoryError(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.SaveFn = func(ctx context.Context, s *domain.Session) error {
		return errors.New("store full")
	}

	uc := usecase.NewOpenSessionUseCase(repo, usecase.DefaultDatasetSettings(), nil)

	s, err := uc.Execute(context.Background())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if err.Error() != "store full" {
		t.Fatalf("expected store full, got %v", err)
	}
	if s != nil {
		t.Fatalf("expected nil session on error")
	}
}
