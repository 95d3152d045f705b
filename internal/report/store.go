package report

import "sync"

// Store holds the most recently rendered documents. Serve-mode handlers
// read from it while the scheduled refresh swaps a new set in; documents
// themselves are immutable once stored.
type Store struct {
	mu   sync.RWMutex
	docs []Document
}

func (s *Store) Set(docs []Document) {
	s.mu.Lock()
	s.docs = docs
	s.mu.Unlock()
}

func (s *Store) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs
}

func (s *Store) Find(name string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.docs {
		if d.Name == name {
			return d, true
		}
	}
	return Document{}, false
}
