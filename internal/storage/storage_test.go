// internal/storage/storage_test.go
package storage_test

import (
	"testing"
	"time"

	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/stretchr/testify/assert"
)

func TestSortBuilds(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	bs := []storage.Build{
		{ID: "c", SavedAt: t0.Add(time.Minute)},
		{ID: "b", SavedAt: t0},
		{ID: "a", SavedAt: t0},
	}

	storage.SortBuilds(bs)

	var ids []string
	for _, b := range bs {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
