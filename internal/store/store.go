package store

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an in-memory cache of entity records keyed by id, one per entity
// kind. Writers are the mutation path and the realtime reconciler; both go
// through Upsert/Remove only, which are idempotent, so interleaved callers can
// at worst apply stale data until the next authoritative refresh.
type Store struct {
	mu    sync.Mutex
	recs  map[uuid.UUID]Record
	order []uuid.UUID
}

func New() *Store {
	return &Store{recs: make(map[uuid.UUID]Record)}
}

// Upsert inserts rec if its id is absent, otherwise replaces the stored
// record. When rec.Related is nil the previously stored relation list is kept:
// base-table updates never carry relation data and must not wipe assignments
// that are already known.
func (s *Store) Upsert(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.recs[rec.ID]
	if ok && rec.Related == nil {
		rec.Related = prev.Related
	}
	if !ok {
		if rec.Related == nil {
			rec.Related = []Summary{}
		}
		s.order = append(s.order, rec.ID)
	}
	s.recs[rec.ID] = rec.Clone()
}

// Remove deletes the record with the given id. Removing an absent id is a
// no-op, not an error.
func (s *Store) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recs[id]; !ok {
		return
	}
	delete(s.recs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns the record for id, or false when it is not cached.
func (s *Store) Get(id uuid.UUID) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.recs[id]
	if !ok {
		return Record{}, false
	}
	return rec.Clone(), true
}

// List returns all records in insertion order.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.recs[id].Clone())
	}
	return out
}

// Replace swaps the full contents of the store, used by full re-fetches.
func (s *Store) Replace(recs []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = make(map[uuid.UUID]Record, len(recs))
	s.order = s.order[:0]
	for _, rec := range recs {
		if _, ok := s.recs[rec.ID]; ok {
			continue
		}
		s.order = append(s.order, rec.ID)
		s.recs[rec.ID] = rec.Clone()
	}
}

// Len returns the number of cached records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

// Cache bundles the per-kind stores so they can travel through the container
// as one dependency.
type Cache struct {
	Employees *Store
	Projects  *Store
}

func NewCache() *Cache {
	return &Cache{Employees: New(), Projects: New()}
}
