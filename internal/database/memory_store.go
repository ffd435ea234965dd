package database

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/chatkarma/chatkarma/internal/domain"
)

type memoryRecord struct {
	item  string // casing of the first mutation
	score int
	seq   int
}

// MemoryStore is an in-memory score store for tests and single-process runs
// without a database. It mirrors the repository semantics: case-insensitive
// item merging and insertion-order tie-breaking.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*memoryRecord // keyed by lowercased item
	nextSeq int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]*memoryRecord)}
}

func (s *MemoryStore) ApplyDelta(_ context.Context, item string, op domain.Operation) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(item)
	rec, ok := s.records[key]
	if !ok {
		rec = &memoryRecord{item: item, seq: s.nextSeq}
		s.nextSeq++
		s.records[key] = rec
	}

	rec.score += op.Delta()
	return rec.score, nil
}

func (s *MemoryStore) TopScores(_ context.Context, limit int) ([]domain.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]*memoryRecord, 0, len(s.records))
	for _, rec := range s.records {
		all = append(all, rec)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].seq < all[j].seq
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	records := make([]domain.ScoreRecord, len(all))
	for i, rec := range all {
		records[i] = domain.ScoreRecord{Item: rec.item, Score: rec.score}
	}
	return records, nil
}
