package store

import "github.com/google/uuid"

// Summary is the id+name view of a related entity. Relation lists carry only
// summaries, never full nested records.
type Summary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Record is a cached entity together with its flattened relation list.
// Related == nil means "relation state unknown"; an upsert with a nil Related
// keeps whatever the store already holds for that id (merge-preserve). An
// empty non-nil slice means "known to have no relations".
type Record struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Related []Summary `json:"related"`
}

// Clone returns a copy whose relation list does not alias the receiver's.
func (r Record) Clone() Record {
	out := r
	if r.Related != nil {
		out.Related = make([]Summary, len(r.Related))
		copy(out.Related, r.Related)
	}
	return out
}
