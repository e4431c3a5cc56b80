package memory

import (
	"sync"
	"sync/atomic"

	"elevennote-be/internal/entity"
)

// Store is a process-local note table. NoteIds are assigned from a counter like a serial column.
type Store struct {
	mu     sync.Mutex
	notes  []*entity.Note
	nextId int

	acquired atomic.Int64
	active   atomic.Int64
}

func NewStore() *Store {
	return &Store{nextId: 1}
}

// ConnectionsAcquired counts every Connection call made against the store.
func (s *Store) ConnectionsAcquired() int64 {
	return s.acquired.Load()
}

// ConnectionsActive counts connections that have not been released yet.
func (s *Store) ConnectionsActive() int64 {
	return s.active.Load()
}

// Insert stores a copy of note as-is, keeping its NoteId. Used to seed rows, including duplicates.
func (s *Store) Insert(note entity.Note) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.NoteId >= s.nextId {
		s.nextId = note.NoteId + 1
	}
	s.notes = append(s.notes, &note)
}
