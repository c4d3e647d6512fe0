package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSearchOverlay_InactiveByDefault(t *testing.T) {
	o := NewSearchOverlay()

	results, active := o.Results()
	assert.False(t, active)
	assert.Nil(t, results)
}

func TestSearchOverlay_SetReplacesWholesale(t *testing.T) {
	o := NewSearchOverlay()

	first := []Record{{ID: uuid.New(), Name: "Ada"}}
	o.Set(first)

	results, active := o.Results()
	assert.True(t, active)
	assert.Equal(t, first, results)

	second := []Record{{ID: uuid.New(), Name: "Grace"}, {ID: uuid.New(), Name: "Barbara"}}
	o.Set(second)

	results, active = o.Results()
	assert.True(t, active)
	assert.Equal(t, second, results)
}

func TestSearchOverlay_EmptyResultsStillActive(t *testing.T) {
	o := NewSearchOverlay()

	// A search that matched nothing is still an active search.
	o.Set([]Record{})

	results, active := o.Results()
	assert.True(t, active)
	assert.Empty(t, results)
}

func TestSearchOverlay_Clear(t *testing.T) {
	o := NewSearchOverlay()
	o.Set([]Record{{ID: uuid.New(), Name: "Ada"}})

	o.Clear()

	_, active := o.Results()
	assert.False(t, active)
}
