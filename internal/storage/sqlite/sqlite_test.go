package sqlitestorage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/armourforge/vehicle-builder/internal/catalog"
	"github.com/armourforge/vehicle-builder/internal/factory"
	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time interface check
var _ storage.Backend = (*Backend)(nil)

func newTestBackend(t *testing.T, cfg Config) *Backend {
	t.Helper()
	b := New(cfg, zerolog.Nop())
	require.NoError(t, b.Init())
	return b
}

func testBuild(t *testing.T, class string) *storage.Build {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	vc, err := cat.VehicleClass(class)
	require.NoError(t, err)

	u := factory.Build(vc).WithModificationRecorded("Resilient")
	return &storage.Build{Name: "Grinder", ClassName: vc.Name, Cost: vc.BaseCost + 1, Unit: u}
}

func TestInitClose_InMemory(t *testing.T) {
	b := newTestBackend(t, Config{})
	assert.True(t, b.db.IsValid)
	assert.True(t, b.db.InMemory)
	require.NoError(t, b.Close())
}

func TestSaveGet(t *testing.T) {
	b := newTestBackend(t, Config{})
	defer b.Close()

	bd := testBuild(t, "Heavy Walker")
	require.NoError(t, b.Save(bd))
	assert.NotEmpty(t, bd.ID)
	assert.False(t, bd.SavedAt.IsZero())

	got, err := b.Get(bd.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grinder", got.Name)
	assert.Equal(t, bd.Cost, got.Cost)
	assert.Equal(t, bd.Unit.Modifications, got.Unit.Modifications)
	assert.Equal(t, bd.Unit.Armour.String(), got.Unit.Armour.String())
	assert.Len(t, got.Unit.Mounts, len(bd.Unit.Mounts))
}

func TestSaveUpserts(t *testing.T) {
	b := newTestBackend(t, Config{})
	defer b.Close()

	bd := testBuild(t, "Light Flyer")
	require.NoError(t, b.Save(bd))
	bd.Name = "Kite"
	require.NoError(t, b.Save(bd))

	all, err := b.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Kite", all[0].Name)
}

func TestNotFound(t *testing.T) {
	b := newTestBackend(t, Config{})
	defer b.Close()

	_, err := b.Get("missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, b.Delete("missing"), storage.ErrNotFound)
}

func TestListOrderAndDelete(t *testing.T) {
	b := newTestBackend(t, Config{})
	defer b.Close()

	next := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time {
		t := next
		next = next.Add(time.Minute)
		return t
	}

	first := testBuild(t, "Light Battle Vehicle")
	second := testBuild(t, "Behemoth")
	require.NoError(t, b.Save(first))
	require.NoError(t, b.Save(second))

	all, err := b.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	require.NoError(t, b.Delete(first.ID))
	all, err = b.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Behemoth", all[0].ClassName)
}

func TestFileDatabasePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "builds.db")

	b := newTestBackend(t, Config{Path: path})
	bd := testBuild(t, "Superheavy Walker")
	require.NoError(t, b.Save(bd))
	require.NoError(t, b.Close())

	reopened := newTestBackend(t, Config{Path: path})
	defer reopened.Close()
	got, err := reopened.Get(bd.ID)
	require.NoError(t, err)
	assert.Equal(t, "Superheavy Walker", got.ClassName)
}

func TestCloseDumpsInMemoryDB(t *testing.T) {
	dump := filepath.Join(t.TempDir(), "dump.db")

	b := newTestBackend(t, Config{DumpPath: dump})
	bd := testBuild(t, "Fast Mover")
	require.NoError(t, b.Save(bd))
	require.NoError(t, b.Close())

	_, err := os.Stat(dump)
	require.NoError(t, err)

	reopened := newTestBackend(t, Config{Path: dump})
	defer reopened.Close()
	got, err := reopened.Get(bd.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fast Mover", got.ClassName)
}
