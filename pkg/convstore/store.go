package convstore

import (
	"sync"
	"time"

	"github.com/spendsnap/spendsnap/pkg/models"
)

// Store keeps at most one pending draft per conversation id, in memory.
// Last write wins; nothing survives a restart. A multi-instance deployment
// swaps this for a shared store behind the same contract.
type Store struct {
	mu     sync.RWMutex
	drafts map[int64]*models.PendingDraft
}

func New() *Store {
	return &Store{
		drafts: map[int64]*models.PendingDraft{},
	}
}

func (s *Store) Set(conversationID int64, draft *models.PendingDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drafts[conversationID] = draft
}

func (s *Store) Get(conversationID int64) *models.PendingDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.drafts[conversationID]
}

func (s *Store) Has(conversationID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.drafts[conversationID]
	return ok
}

func (s *Store) Delete(conversationID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, conversationID)
}

func (s *Store) All() []*models.PendingDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.PendingDraft, 0, len(s.drafts))
	for _, draft := range s.drafts {
		out = append(out, draft)
	}

	return out
}

// SweepExpired removes every draft older than maxAge and returns the number
// removed. Invoked periodically by an external scheduler.
func (s *Store) SweepExpired(maxAge time.Duration) int {
	cutoff := time.Now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, draft := range s.drafts {
		if draft.CreatedAt.Before(cutoff) {
			delete(s.drafts, id)
			removed++
		}
	}

	return removed
}
