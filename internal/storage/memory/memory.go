// internal/storage/memory/memory.go
package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/armourforge/vehicle-builder/internal/config"
	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/google/uuid"
)

// Backend keeps saved builds in memory, optionally backed by a JSON file
type Backend struct {
	cfg    config.MemoryConfig
	builds map[string]storage.Build
	now    func() time.Time
	mu     sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:    cfg,
		builds: make(map[string]storage.Build),
		now:    time.Now,
	}
}

// Init loads previously exported builds when an output file is configured
func (b *Backend) Init() error {
	if b.cfg.OutputFile == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	loaded, err := b.importJSON()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", b.cfg.OutputFile, err)
	}
	for _, bd := range loaded {
		b.builds[bd.ID] = bd
	}
	return nil
}

// Close exports all builds when an output file is configured
func (b *Backend) Close() error {
	if b.cfg.OutputFile == "" {
		return nil
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.exportJSON()
}

// Save stores a copy of the build, assigning an ID when it has none
func (b *Backend) Save(bd *storage.Build) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if bd.ID == "" {
		bd.ID = uuid.NewString()
	}
	bd.SavedAt = b.now().UTC()

	stored := *bd
	stored.Unit = bd.Unit.Clone()
	b.builds[bd.ID] = stored
	return nil
}

// Get returns the build with the given ID
func (b *Backend) Get(id string) (storage.Build, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bd, ok := b.builds[id]
	if !ok {
		return storage.Build{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	bd.Unit = bd.Unit.Clone()
	return bd, nil
}

// List returns every build, oldest first
func (b *Backend) List() ([]storage.Build, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.snapshot(), nil
}

// Delete removes the build with the given ID
func (b *Backend) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.builds[id]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	delete(b.builds, id)
	return nil
}

// snapshot copies all builds in list order. Caller must hold the lock.
func (b *Backend) snapshot() []storage.Build {
	out := make([]storage.Build, 0, len(b.builds))
	for _, bd := range b.builds {
		bd.Unit = bd.Unit.Clone()
		out = append(out, bd)
	}
	storage.SortBuilds(out)
	return out
}
