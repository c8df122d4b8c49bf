package rules

import (
	"testing"

	"github.com/armourforge/vehicle-builder/internal/catalog"
	"github.com/armourforge/vehicle-builder/internal/factory"
	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return cat
}

func newUnit(t *testing.T, class string) core.Unit {
	t.Helper()
	vc, err := testCatalog(t).VehicleClass(class)
	require.NoError(t, err)
	return factory.Build(vc)
}

func newApplicator(t *testing.T) *Applicator {
	t.Helper()
	return NewApplicator(testCatalog(t))
}

// withApplied returns u with the record for name forced to q.
func withApplied(u core.Unit, name modification.Name, q int) core.Unit {
	out := u.Clone()
	out.Modifications = []core.AppliedModification{{Name: name.String(), Quantity: q}}
	return out
}

func equip(t *testing.T, u core.Unit, mountID, weapon string) core.Unit {
	t.Helper()
	wt, err := testCatalog(t).WeaponType(weapon)
	require.NoError(t, err)
	out, err := u.EquipWeapon(mountID, wt)
	require.NoError(t, err)
	return out
}

func mustValid(t *testing.T, u core.Unit, name modification.Name) bool {
	t.Helper()
	ok, err := IsValid(u, name)
	require.NoError(t, err)
	return ok
}

// applyValid checks validity and then applies, like the engine does.
func applyValid(t *testing.T, a *Applicator, u core.Unit, name modification.Name) core.Unit {
	t.Helper()
	require.True(t, mustValid(t, u, name), "%s should be valid", name)
	out, err := a.Apply(u, name)
	require.NoError(t, err)
	return out
}

func mountIDs(ms core.Mounts) []string {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}
