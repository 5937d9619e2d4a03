package versions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-analyzer/resume/model"
)

// MemoryStore keeps encoded versions in memory and is safe for concurrent use.
// Readers always receive a fresh copy.
type MemoryStore struct {
	Now   func() time.Time
	NewID func() string

	mu    sync.RWMutex
	order []string
	byID  map[string][]byte
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Now:   func() time.Time { return time.Now().UTC() },
		NewID: uuid.NewString,
		byID:  make(map[string][]byte),
	}
}

// Append stores a new version.
func (s *MemoryStore) Append(ctx context.Context, parsed model.ResumeDocument, analysis model.AnalysisResult, score model.Score) (Version, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v := Version{
		ID:         s.NewID(),
		Timestamp:  s.Now(),
		ParsedData: parsed,
		Analysis:   analysis,
		Score:      score,
	}
	if _, taken := s.byID[v.ID]; taken {
		return Version{}, fmt.Errorf("append version %s: %w", v.ID, ErrDuplicateID)
	}
	payload, err := encode(v)
	if err != nil {
		return Version{}, err
	}
	s.byID[v.ID] = payload
	s.order = append(s.order, v.ID)
	return decode(payload)
}

// List returns versions newest first.
func (s *MemoryStore) List(ctx context.Context, limit, offset int) ([]Version, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	start, end := window(len(s.order), limit, offset)
	out := make([]Version, 0, end-start)
	for i := start; i < end; i++ {
		id := s.order[len(s.order)-1-i]
		v, err := decode(s.byID[id])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Get returns a version by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (Version, error) {
	if err := ctx.Err(); err != nil {
		return Version{}, err
	}

	s.mu.RLock()
	payload, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok {
		return Version{}, ErrNotFound
	}
	return decode(payload)
}
