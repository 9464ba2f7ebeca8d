// Package sessionstore keeps widget sessions in process memory. Sessions are
// not persisted; a restart starts every widget over from idle.
package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"booking-widget/internal/domain/workflow"
	"booking-widget/internal/pkg/clock"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

type entry struct {
	session  *workflow.Session
	lastSeen time.Time
}

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*entry
	idleTTL  time.Duration
	clock    clock.Clock
	opts     []workflow.Option
	logger   *slog.Logger
}

func NewMemoryStore(idleTTL time.Duration, clk clock.Clock, logger *slog.Logger, opts ...workflow.Option) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*entry),
		idleTTL:  idleTTL,
		clock:    clk,
		opts:     opts,
		logger:   logger,
	}
}

func (s *MemoryStore) Create(_ context.Context) (*workflow.Session, error) {
	session := workflow.NewSession(uuid.New(), s.opts...)

	s.mu.Lock()
	s.sessions[session.ID()] = &entry{session: session, lastSeen: s.clock.Now()}
	s.mu.Unlock()

	return session, nil
}

// Get refreshes the session's idle timer.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*workflow.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := s.clock.Now()
	if s.expired(e, now) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	e.lastSeen = now
	return e.session, nil
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops sessions idle longer than the TTL and reports how many went.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	removed := 0
	for id, e := range s.sessions {
		if s.expired(e, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps on every tick until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				s.logger.Info("Expired idle widget sessions", slog.Int("removed", removed), slog.Int("remaining", s.Len()))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *MemoryStore) expired(e *entry, now time.Time) bool {
	return s.idleTTL > 0 && now.Sub(e.lastSeen) > s.idleTTL
}
