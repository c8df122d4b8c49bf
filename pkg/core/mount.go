// pkg/core/mount.go
package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownMount is returned when a mount identity is not on the unit.
	ErrUnknownMount = errors.New("unknown mount")
	// ErrDuplicateMount is returned when adding a mount whose identity is already taken.
	ErrDuplicateMount = errors.New("duplicate mount identity")
	// ErrIncompatibleWeapon is returned when a weapon's category cannot go on a mount.
	ErrIncompatibleWeapon = errors.New("weapon incompatible with mount")
)

// WeaponType is a catalog entry for a weapon.
type WeaponType struct {
	Name     string       `json:"name"`
	Category string       `json:"category"`
	Cost     int          `json:"cost"`
	Rating   string       `json:"rating"`
	Special  SpecialRules `json:"special"`
}

// Weapon is a weapon fitted to a mount.
type Weapon struct {
	Type     WeaponType    `json:"type"`
	Location MountLocation `json:"location"`
}

// NewWeapon fits a weapon type at a location.
func NewWeapon(t WeaponType, loc MountLocation) Weapon {
	t.Special = t.Special.Clone()
	return Weapon{Type: t, Location: loc}
}

// Name returns the weapon type name.
func (w Weapon) Name() string { return w.Type.Name }

// MountType describes a kind of mount: its location and the weapon
// categories it accepts.
type MountType struct {
	Key        string        `json:"key"`
	Location   MountLocation `json:"location"`
	Compatible []string      `json:"compatible"`
}

// Clone returns a copy that does not share the compatible list.
func (t MountType) Clone() MountType {
	t.Compatible = slices.Clone(t.Compatible)
	return t
}

// Accepts reports whether a weapon type can be fitted to this mount type.
func (t MountType) Accepts(w WeaponType) bool {
	return slices.Contains(t.Compatible, w.Category)
}

// Mount is a weapon slot on a unit. A nil Weapon means the mount is empty.
// Overrides are special rules applied to whatever weapon the mount carries.
type Mount struct {
	ID        string       `json:"id"`
	Type      MountType    `json:"type"`
	Weapon    *Weapon      `json:"weapon,omitempty"`
	Overrides SpecialRules `json:"overrides,omitempty"`
}

// NewEmptyMount creates an empty mount.
func NewEmptyMount(id string, t MountType) Mount {
	return Mount{ID: id, Type: t}
}

// Location returns the mount's location.
func (m Mount) Location() MountLocation { return m.Type.Location }

// Empty reports whether no weapon is fitted.
func (m Mount) Empty() bool { return m.Weapon == nil }

// WeaponSpecial returns the effective special rules of the fitted weapon:
// the weapon's own rules plus the mount's overrides. Empty mounts return nil.
func (m Mount) WeaponSpecial() SpecialRules {
	if m.Weapon == nil {
		return nil
	}
	return m.Weapon.Type.Special.Union(m.Overrides)
}

// CompatibleWeapons filters a weapon list down to those this mount accepts.
func (m Mount) CompatibleWeapons(all []WeaponType) []WeaponType {
	var out []WeaponType
	for _, w := range all {
		if m.Type.Accepts(w) {
			out = append(out, w)
		}
	}
	return out
}

func (m Mount) clone() Mount {
	out := m
	out.Type = m.Type.Clone()
	out.Overrides = slices.Clone(m.Overrides)
	if m.Weapon != nil {
		w := NewWeapon(m.Weapon.Type, m.Weapon.Location)
		out.Weapon = &w
	}
	return out
}

// Mounts is a unit's mount collection, kept ordered by identity.
// Every method returns a new collection.
type Mounts []Mount

func compareMountID(a, b Mount) int {
	return strings.Compare(a.ID, b.ID)
}

// Clone returns a deep copy.
func (ms Mounts) Clone() Mounts {
	out := make(Mounts, len(ms))
	for i, m := range ms {
		out[i] = m.clone()
	}
	return out
}

// Find returns the mount with the given identity.
func (ms Mounts) Find(id string) (Mount, bool) {
	i, found := slices.BinarySearchFunc(ms, id, func(m Mount, id string) int {
		return strings.Compare(m.ID, id)
	})
	if !found {
		return Mount{}, false
	}
	return ms[i], true
}

// Add returns a copy with m inserted in identity order.
func (ms Mounts) Add(m Mount) (Mounts, error) {
	if _, exists := ms.Find(m.ID); exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateMount, m.ID)
	}
	out := append(ms.Clone(), m.clone())
	slices.SortFunc(out, compareMountID)
	return out, nil
}

// RemoveByID returns a copy without the mount with the given identity.
func (ms Mounts) RemoveByID(id string) (Mounts, error) {
	if _, exists := ms.Find(id); !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMount, id)
	}
	out := make(Mounts, 0, len(ms)-1)
	for _, m := range ms {
		if m.ID != id {
			out = append(out, m.clone())
		}
	}
	return out, nil
}

// Replace returns a copy with the mount of the same identity swapped for m.
func (ms Mounts) Replace(m Mount) (Mounts, error) {
	out := ms.Clone()
	for i := range out {
		if out[i].ID == m.ID {
			out[i] = m.clone()
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownMount, m.ID)
}

// AtLocations returns the mounts at any of the given locations, in identity order.
func (ms Mounts) AtLocations(locs ...MountLocation) Mounts {
	var out Mounts
	for _, m := range ms {
		if slices.Contains(locs, m.Location()) {
			out = append(out, m.clone())
		}
	}
	return out
}

// HasAnyLocation reports whether at least one mount is at one of the locations.
func (ms Mounts) HasAnyLocation(locs ...MountLocation) bool {
	return slices.ContainsFunc(ms, func(m Mount) bool {
		return slices.Contains(locs, m.Location())
	})
}

// WithSpecialOverride returns a copy where every mount carries the override tag.
func (ms Mounts) WithSpecialOverride(tag string) Mounts {
	out := ms.Clone()
	for i := range out {
		out[i].Overrides = out[i].Overrides.Insert(tag)
	}
	return out
}

// Filled returns the mounts that carry a weapon.
func (ms Mounts) Filled() Mounts {
	var out Mounts
	for _, m := range ms {
		if !m.Empty() {
			out = append(out, m.clone())
		}
	}
	return out
}
