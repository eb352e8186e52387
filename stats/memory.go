package stats

import "sync"

// MemoryStore keeps results for the current process only. It backs tests
// and the disabled-persistence mode.
type MemoryStore struct {
	mutex   sync.RWMutex
	results []Result
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record appends one finished round.
func (s *MemoryStore) Record(result Result) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.results = append(s.results, result)
	return nil
}

// Totals aggregates all recorded rounds.
func (s *MemoryStore) Totals() (Totals, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var t Totals
	for _, r := range s.results {
		t.Rounds++
		switch {
		case r.Draw:
			t.Draws++
		case r.Winner == "player":
			t.Wins++
		default:
			t.Losses++
		}
		if r.Natural {
			t.Blackjacks++
		}
	}
	return t, nil
}

// Results returns a copy of every recorded result, oldest first.
func (s *MemoryStore) Results() []Result {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
