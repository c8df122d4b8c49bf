package rules

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/armourforge/vehicle-builder/pkg/core"
)

// Mount types added by mutations, keyed by the unit's size. A size missing
// from a table means the mutation cannot be applied to that size.
var (
	sponsonsForAdditionalSponsons = sizeTable[string]{
		core.Superheavy: "superheavy-sponsons",
		core.Behemoth:   "behemoth-sponsons",
	}
	sponsonsForShoulderTurrets = sizeTable[string]{
		core.Heavy:      "heavy-sponsons",
		core.Superheavy: "superheavy-sponsons",
	}
	coaxialBySize = sizeTable[string]{
		core.Light:      "coaxial",
		core.Heavy:      "coaxial",
		core.Superheavy: "coaxial",
		core.Behemoth:   "coaxial",
	}
	hullBySize = sizeTable[string]{
		core.Light:      "light-hull",
		core.Heavy:      "heavy-hull",
		core.Superheavy: "superheavy-hull",
	}
	armBySize = sizeTable[string]{
		core.Light:      "light-arm",
		core.Heavy:      "heavy-arm",
		core.Superheavy: "superheavy-arm",
	}
	turretBySize = sizeTable[string]{
		core.Light:      "light-turret",
		core.Heavy:      "heavy-turret",
		core.Superheavy: "superheavy-turret",
	}
	secondaryTurretBySize = sizeTable[string]{
		core.Light:      "superheavy-turret",
		core.Heavy:      "superheavy-turret",
		core.Superheavy: "superheavy-turret",
		core.Behemoth:   "superheavy-turret",
	}
)

// newMount resolves the mount type for the unit's size and returns an empty
// mount identified by id.
func (a *Applicator) newMount(table sizeTable[string], size core.VehicleSize, id string) (core.Mount, error) {
	key, err := table.lookup(size, ErrIncompatibleSize)
	if err != nil {
		return core.Mount{}, err
	}
	mt, err := a.mounts.MountType(key)
	if err != nil {
		return core.Mount{}, err
	}
	return core.NewEmptyMount(id, mt), nil
}

// greatestID picks, among mounts at the given locations, the one with the
// lexicographically greatest identity.
func greatestID(ms core.Mounts, locs ...core.MountLocation) (core.Mount, error) {
	candidates := ms.AtLocations(locs...)
	if len(candidates) == 0 {
		return core.Mount{}, fmt.Errorf("%w: need one of %v", ErrNoQualifyingMount, locs)
	}
	return slices.MaxFunc(candidates, func(a, b core.Mount) int {
		return strings.Compare(a.ID, b.ID)
	}), nil
}

// byLocationThenIDDesc orders candidates by location name ascending, breaking
// ties by identity descending, and picks the first.
func byLocationThenIDDesc(ms core.Mounts, locs ...core.MountLocation) (core.Mount, error) {
	candidates := ms.AtLocations(locs...)
	if len(candidates) == 0 {
		return core.Mount{}, fmt.Errorf("%w: need one of %v", ErrNoQualifyingMount, locs)
	}
	slices.SortStableFunc(candidates, func(a, b core.Mount) int {
		return cmp.Or(
			strings.Compare(string(a.Location()), string(b.Location())),
			strings.Compare(b.ID, a.ID),
		)
	})
	return candidates[0], nil
}

// firstAt picks the first mount, in identity order, at the location.
func firstAt(ms core.Mounts, loc core.MountLocation) (core.Mount, error) {
	candidates := ms.AtLocations(loc)
	if len(candidates) == 0 {
		return core.Mount{}, fmt.Errorf("%w: need a %s mount", ErrNoQualifyingMount, loc)
	}
	return candidates[0], nil
}
