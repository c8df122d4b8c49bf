// pkg/core/unit.go
package core

import (
	"fmt"
	"slices"
)

// AppliedModification records how many instances of a modification a unit carries.
type AppliedModification struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Unit is one configured vehicle build. Units are values: every method that
// changes something returns a new Unit and leaves the receiver untouched.
type Unit struct {
	Class         VehicleClass          `json:"class"`
	Name          string                `json:"name"`
	Discipline    int                   `json:"discipline"`
	Optics        int                   `json:"optics"`
	Movement      int                   `json:"movement"`
	Morale        int                   `json:"morale"`
	HullPoints    int                   `json:"hullPoints"`
	Armour        Armour                `json:"armour"`
	Special       SpecialRules          `json:"special"`
	Mounts        Mounts                `json:"mounts"`
	Modifications []AppliedModification `json:"modifications"`
}

// Size returns the unit's size category, derived from its class.
func (u Unit) Size() VehicleSize { return u.Class.Size }

// IsOneOfSizes reports whether the unit's size is in sizes.
func (u Unit) IsOneOfSizes(sizes []VehicleSize) bool {
	return slices.Contains(sizes, u.Size())
}

// HasAtLeastOneOfMounts reports whether the unit has a mount at any of the
// locations. An empty list is always satisfied.
func (u Unit) HasAtLeastOneOfMounts(locs []MountLocation) bool {
	if len(locs) == 0 {
		return true
	}
	return u.Mounts.HasAnyLocation(locs...)
}

// Quantity returns how many instances of the named modification are applied.
func (u Unit) Quantity(name string) int {
	for _, m := range u.Modifications {
		if m.Name == name {
			return m.Quantity
		}
	}
	return 0
}

// HasModification reports whether at least one instance of name is applied.
func (u Unit) HasModification(name string) bool {
	return u.Quantity(name) > 0
}

// Clone returns a deep copy.
func (u Unit) Clone() Unit {
	out := u
	out.Class = u.Class.Clone()
	out.Armour = NewArmour(u.Armour.Front, u.Armour.Sides, u.Armour.Rear)
	out.Special = u.Special.Clone()
	out.Mounts = u.Mounts.Clone()
	out.Modifications = slices.Clone(u.Modifications)
	if out.Modifications == nil {
		out.Modifications = []AppliedModification{}
	}
	return out
}

// WithModificationRecorded returns a copy whose record for name is one higher.
// The first instance appends a new entry, so the record keeps application order.
func (u Unit) WithModificationRecorded(name string) Unit {
	out := u.Clone()
	for i := range out.Modifications {
		if out.Modifications[i].Name == name {
			out.Modifications[i].Quantity++
			return out
		}
	}
	out.Modifications = append(out.Modifications, AppliedModification{Name: name, Quantity: 1})
	return out
}

// WithName returns a copy with a new name.
func (u Unit) WithName(name string) Unit {
	out := u.Clone()
	out.Name = name
	return out
}

// EquipWeapon returns a copy with the weapon fitted to the mount.
// A weapon already on the mount is replaced.
func (u Unit) EquipWeapon(mountID string, w WeaponType) (Unit, error) {
	m, ok := u.Mounts.Find(mountID)
	if !ok {
		return Unit{}, fmt.Errorf("%w: %s", ErrUnknownMount, mountID)
	}
	if !m.Type.Accepts(w) {
		return Unit{}, fmt.Errorf("%w: %s (%s) on %s mount %s",
			ErrIncompatibleWeapon, w.Name, w.Category, m.Location(), mountID)
	}
	weapon := NewWeapon(w, m.Location())
	m.Weapon = &weapon

	out := u.Clone()
	mounts, err := out.Mounts.Replace(m)
	if err != nil {
		return Unit{}, err
	}
	out.Mounts = mounts
	return out, nil
}

// UnequipWeapon returns a copy with the mount emptied.
func (u Unit) UnequipWeapon(mountID string) (Unit, error) {
	m, ok := u.Mounts.Find(mountID)
	if !ok {
		return Unit{}, fmt.Errorf("%w: %s", ErrUnknownMount, mountID)
	}
	m.Weapon = nil

	out := u.Clone()
	mounts, err := out.Mounts.Replace(m)
	if err != nil {
		return Unit{}, err
	}
	out.Mounts = mounts
	return out, nil
}

// WeaponCost sums the cost of every fitted weapon.
func (u Unit) WeaponCost() int {
	total := 0
	for _, m := range u.Mounts {
		if m.Weapon != nil {
			total += m.Weapon.Type.Cost
		}
	}
	return total
}
