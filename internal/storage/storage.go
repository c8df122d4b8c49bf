// internal/storage/storage.go
package storage

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"github.com/armourforge/vehicle-builder/pkg/core"
)

// ErrNotFound is returned when no saved build has the requested ID.
var ErrNotFound = errors.New("build not found")

// Build is a saved unit together with its bookkeeping.
type Build struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ClassName string    `json:"className"`
	Cost      int       `json:"cost"`
	Unit      core.Unit `json:"unit"`
	SavedAt   time.Time `json:"savedAt"`
}

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Save stores b. An empty ID is assigned a new one, and SavedAt is stamped.
	Save(b *Build) error
	Get(id string) (Build, error)
	// List returns every build, oldest first.
	List() ([]Build, error)
	Delete(id string) error
}

// SortBuilds orders builds by save time, then ID.
func SortBuilds(bs []Build) {
	slices.SortFunc(bs, func(a, b Build) int {
		return cmp.Or(a.SavedAt.Compare(b.SavedAt), cmp.Compare(a.ID, b.ID))
	})
}
