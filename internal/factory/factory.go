// Package factory builds the default unit for a vehicle class.
package factory

import (
	"slices"
	"strconv"
	"strings"

	"github.com/armourforge/vehicle-builder/pkg/core"
)

// Build returns a unit with the class's base stats and its base mount layout,
// every mount empty and no modifications applied.
//
// Mount identities are the first letter of the location plus a per-location
// counter in layout order: a class with two arms and a turret gets A1, A2, T1.
func Build(vc core.VehicleClass) core.Unit {
	vc = vc.Clone()
	counters := make(map[core.MountLocation]int, len(vc.Mounts))
	mounts := make(core.Mounts, 0, len(vc.Mounts))
	for _, mt := range vc.Mounts {
		counters[mt.Location]++
		id := mt.Location.IDPrefix() + strconv.Itoa(counters[mt.Location])
		mounts = append(mounts, core.NewEmptyMount(id, mt.Clone()))
	}
	slices.SortFunc(mounts, func(a, b core.Mount) int {
		return strings.Compare(a.ID, b.ID)
	})

	return core.Unit{
		Class:         vc,
		Name:          vc.Name,
		Discipline:    vc.Discipline,
		Optics:        vc.Optics,
		Movement:      vc.Movement,
		Morale:        vc.Morale,
		HullPoints:    vc.HullPoints,
		Armour:        core.NewArmour(vc.Armour.Front, vc.Armour.Sides, vc.Armour.Rear),
		Special:       vc.Special.Clone(),
		Mounts:        mounts,
		Modifications: []core.AppliedModification{},
	}
}
