// Package sqlitestorage implements the storage.Backend interface on a SQLite
// database through GORM. An empty Path keeps the database in memory and, when
// DumpPath is set, writes it out with VACUUM INTO on Close.
package sqlitestorage

import (
	"errors"
	"fmt"
	"time"

	"github.com/armourforge/vehicle-builder/internal/database"
	"github.com/armourforge/vehicle-builder/internal/model"
	"github.com/armourforge/vehicle-builder/internal/model/convert"
	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Config holds configuration for the SQLite storage backend.
type Config struct {
	Path          string
	DumpPath      string // Path for a VACUUM INTO dump of an in-memory DB
	CatalogSource string
}

// Backend persists builds through a database.Manager.
type Backend struct {
	cfg Config
	db  *database.Manager
	log zerolog.Logger
	now func() time.Time
}

// New creates a new SQLite storage backend. Nothing is opened until Init.
func New(cfg Config, log zerolog.Logger) *Backend {
	return &Backend{
		cfg: cfg,
		db:  database.NewManager(log),
		log: log,
		now: time.Now,
	}
}

// Init connects and migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.Connect(b.cfg.Path); err != nil {
		return err
	}
	return b.db.Setup(b.cfg.CatalogSource)
}

// Close dumps an in-memory database if configured, then closes the connection.
func (b *Backend) Close() error {
	var dumpErr error
	if b.db.InMemory && b.cfg.DumpPath != "" && b.db.IsValid {
		start := time.Now()
		dumpErr = b.db.DumpMemoryToDisk(b.cfg.DumpPath)
		if dumpErr != nil {
			b.log.Error().Err(dumpErr).Msg("Error dumping to disk")
		} else {
			b.log.Debug().Dur("duration", time.Since(start)).Str("path", b.cfg.DumpPath).Msg("Dumped to disk")
		}
	}
	return errors.Join(dumpErr, b.db.Close())
}

// Save upserts the build, assigning an ID when it has none.
func (b *Backend) Save(bd *storage.Build) error {
	if bd.ID == "" {
		bd.ID = uuid.NewString()
	}
	bd.SavedAt = b.now().UTC()

	row, err := convert.BuildToSavedUnit(*bd)
	if err != nil {
		return err
	}
	if err := b.db.DB.Save(&row).Error; err != nil {
		return fmt.Errorf("saving build %s: %w", bd.ID, err)
	}
	return nil
}

// Get loads the build with the given ID.
func (b *Backend) Get(id string) (storage.Build, error) {
	var row model.SavedUnit
	err := b.db.DB.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.Build{}, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return storage.Build{}, fmt.Errorf("loading build %s: %w", id, err)
	}
	return convert.SavedUnitToBuild(row)
}

// List returns every build, oldest first.
func (b *Backend) List() ([]storage.Build, error) {
	var rows []model.SavedUnit
	if err := b.db.DB.Order("saved_at, id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing builds: %w", err)
	}

	out := make([]storage.Build, 0, len(rows))
	for _, row := range rows {
		bd, err := convert.SavedUnitToBuild(row)
		if err != nil {
			return nil, err
		}
		out = append(out, bd)
	}
	return out, nil
}

// Delete removes the build with the given ID.
func (b *Backend) Delete(id string) error {
	res := b.db.DB.Delete(&model.SavedUnit{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("deleting build %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return nil
}
