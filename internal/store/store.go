package store

import "github.com/Makepad-fr/packing/internal/model"

// Store owns the current snapshot of the list. Every operation replaces
// the snapshot with the result of the matching functional update and
// returns it. Snapshots handed out earlier are never modified.
//
// Store is not safe for concurrent use; callers serialize access through
// their event loop.
type Store struct {
	ids     model.IDGenerator
	current Collection
}

// New returns a Store starting from seed. A nil ids falls back to UUIDs.
func New(ids model.IDGenerator, seed Collection) *Store {
	if ids == nil {
		ids = model.UUIDs{}
	}
	return &Store{ids: ids, current: seed}
}

// Snapshot returns the current collection.
func (s *Store) Snapshot() Collection { return s.current }

func (s *Store) Add(name string, quantity int) Collection {
	s.current = Add(s.current, s.ids, name, quantity)
	return s.current
}

func (s *Store) Toggle(id string) Collection {
	s.current = Toggle(s.current, id)
	return s.current
}

func (s *Store) Remove(id string) Collection {
	s.current = Remove(s.current, id)
	return s.current
}

func (s *Store) Edit(id, name string, quantity int) Collection {
	s.current = Edit(s.current, id, name, quantity)
	return s.current
}

func (s *Store) Clear() Collection {
	s.current = Clear(s.current)
	return s.current
}
