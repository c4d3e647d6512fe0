package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStore_UpsertInsert(t *testing.T) {
	s := New()
	id := uuid.New()

	s.Upsert(Record{ID: id, Name: "Ada"})

	rec, ok := s.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "Ada", rec.Name)
	// A fresh insert without relation data still gets an empty list, not nil.
	assert.NotNil(t, rec.Related)
	assert.Empty(t, rec.Related)
}

func TestStore_UpsertKeepsRelationsOnNilRelated(t *testing.T) {
	s := New()
	id := uuid.New()
	projID := uuid.New()

	s.Upsert(Record{ID: id, Name: "Ada", Related: []Summary{{ID: projID, Name: "Apollo"}}})

	// Rename-style update: no relation data attached.
	s.Upsert(Record{ID: id, Name: "Ada King"})

	rec, ok := s.Get(id)
	assert.True(t, ok)
	assert.Equal(t, "Ada King", rec.Name)
	assert.Equal(t, []Summary{{ID: projID, Name: "Apollo"}}, rec.Related)
}

func TestStore_UpsertReplacesRelationsWholesale(t *testing.T) {
	s := New()
	id := uuid.New()
	a, b := uuid.New(), uuid.New()

	s.Upsert(Record{ID: id, Name: "Ada", Related: []Summary{{ID: a, Name: "Apollo"}}})
	s.Upsert(Record{ID: id, Name: "Ada", Related: []Summary{{ID: b, Name: "Borealis"}}})

	rec, _ := s.Get(id)
	assert.Equal(t, []Summary{{ID: b, Name: "Borealis"}}, rec.Related)

	// An explicitly empty list clears, unlike nil.
	s.Upsert(Record{ID: id, Name: "Ada", Related: []Summary{}})
	rec, _ = s.Get(id)
	assert.Empty(t, rec.Related)
}

func TestStore_RemoveIdempotent(t *testing.T) {
	s := New()
	id := uuid.New()
	s.Upsert(Record{ID: id, Name: "Ada"})

	s.Remove(id)
	assert.Equal(t, 0, s.Len())

	// Removing again is a no-op.
	s.Remove(id)
	assert.Equal(t, 0, s.Len())

	// Removing an id that was never there is also fine.
	s.Remove(uuid.New())
	assert.Equal(t, 0, s.Len())
}

func TestStore_ListInsertionOrder(t *testing.T) {
	s := New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		s.Upsert(Record{ID: id, Name: string(rune('a' + i))})
	}

	// Updating the first record must not move it.
	s.Upsert(Record{ID: ids[0], Name: "z"})

	list := s.List()
	assert.Len(t, list, 3)
	for i, id := range ids {
		assert.Equal(t, id, list[i].ID)
	}
	assert.Equal(t, "z", list[0].Name)
}

func TestStore_Replace(t *testing.T) {
	s := New()
	s.Upsert(Record{ID: uuid.New(), Name: "stale"})

	fresh := []Record{
		{ID: uuid.New(), Name: "one", Related: []Summary{}},
		{ID: uuid.New(), Name: "two", Related: []Summary{}},
	}
	s.Replace(fresh)

	list := s.List()
	assert.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Name)
	assert.Equal(t, "two", list[1].Name)
}

func TestStore_GetReturnsClone(t *testing.T) {
	s := New()
	id := uuid.New()
	s.Upsert(Record{ID: id, Name: "Ada", Related: []Summary{{ID: uuid.New(), Name: "Apollo"}}})

	rec, _ := s.Get(id)
	rec.Related[0].Name = "mutated"

	again, _ := s.Get(id)
	assert.Equal(t, "Apollo", again.Related[0].Name)
}
