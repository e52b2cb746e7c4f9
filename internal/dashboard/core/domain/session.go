package domain

import (
	"sync"
	"time"
)

// Session owns one generated dataset plus the current selection and the
// dashboard last computed for it.
type Session struct {
	ID        string
	CreatedAt time.Time
	Dataset   Dataset

	mu        sync.Mutex
	selection Selection
	dashboard *Dashboard
}

func NewSession(id string, ds Dataset, createdAt time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: createdAt,
		Dataset:   ds,
		selection: FullSelection(),
	}
}

func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Clone()
}

func (s *Session) Dashboard() *Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dashboard
}

// Recompute runs build for sel while holding the session lock, so passes for
// one session never overlap. On success sel and the result become current;
// on error the session is left unchanged.
func (s *Session) Recompute(sel Selection, build func(Dataset, Selection) (*Dashboard, error)) (*Dashboard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := build(s.Dataset, sel)
	if err != nil {
		return nil, err
	}
	s.selection = sel.Clone()
	s.dashboard = d
	return d, nil
}
