package pastebintest

import (
	"sort"
	"sync"
	"time"
)

// storedPaste is one paste held by the fake service.
type storedPaste struct {
	Key       string
	Owner     string // username, "" for guest pastes
	Title     string
	Content   string
	Format    string
	Private   int
	CreatedAt time.Time
	ExpiresAt time.Time // zero = never
	Hits      int
}

// memStore keeps pastes in memory. It preserves the storage contract the
// handlers rely on: Create refuses an existing key so the caller retries
// with a fresh one.
type memStore struct {
	mu     sync.Mutex
	pastes map[string]*storedPaste
}

func newMemStore() *memStore {
	return &memStore{pastes: make(map[string]*storedPaste)}
}

// Get retrieves a paste by key.
func (s *memStore) Get(key string) (*storedPaste, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pastes[key]
	return p, ok
}

// Touch retrieves a paste by key and counts the view.
func (s *memStore) Touch(key string) (*storedPaste, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.pastes[key]
	if ok {
		p.Hits++
	}
	return p, ok
}

// Create attempts to store a paste under its key.
// Returns true if created, false if the key already exists (collision).
func (s *memStore) Create(p *storedPaste) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pastes[p.Key]; exists {
		return false
	}
	s.pastes[p.Key] = p
	return true
}

// Delete removes a paste by key. Returns false if it was not present.
func (s *memStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pastes[key]; !ok {
		return false
	}
	delete(s.pastes, key)
	return true
}

// ListOwned returns the pastes owned by username, newest first.
func (s *memStore) ListOwned(username string) []*storedPaste {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*storedPaste
	for _, p := range s.pastes {
		if p.Owner == username {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
