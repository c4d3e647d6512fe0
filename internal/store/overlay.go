package store

import "sync"

// SearchOverlay holds the result list of the most recent remote search. It is
// a parallel view: setting or clearing it never touches the main store, and a
// new search replaces the previous results wholesale.
type SearchOverlay struct {
	mu      sync.Mutex
	active  bool
	results []Record
}

func NewSearchOverlay() *SearchOverlay {
	return &SearchOverlay{}
}

func (o *SearchOverlay) Set(results []Record) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.active = true
	o.results = make([]Record, len(results))
	for i, rec := range results {
		o.results[i] = rec.Clone()
	}
}

func (o *SearchOverlay) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.active = false
	o.results = nil
}

// Results returns the overlay contents and whether the overlay is active. An
// active overlay with no matches is an empty list, not an error.
func (o *SearchOverlay) Results() ([]Record, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.active {
		return nil, false
	}
	out := make([]Record, len(o.results))
	for i, rec := range o.results {
		out[i] = rec.Clone()
	}
	return out, true
}
