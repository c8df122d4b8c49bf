// Package rules evaluates modifications against units: whether a modification
// may be applied, what it costs, and what applying it does.
//
// Every function here is pure. Units go in, new units come out, and the only
// failures are the typed errors below.
package rules

import (
	"errors"
	"fmt"

	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
)

var (
	// ErrUnknownModification is returned for a name outside the modification catalog.
	ErrUnknownModification = modification.ErrUnknownModification
	// ErrUnknownVehicleSize is returned when a per-size table has no entry for the unit's size.
	ErrUnknownVehicleSize = errors.New("unknown vehicle size")
	// ErrIncompatibleSize is returned when a mutation has no mount type for the unit's size.
	ErrIncompatibleSize = errors.New("incompatible vehicle size")
	// ErrNoQualifyingMount is returned when a mutation needs to remove a mount and none qualifies.
	ErrNoQualifyingMount = errors.New("no qualifying mount")
)

// MountTypeLookup resolves mount-type keys. *catalog.Catalog satisfies it.
type MountTypeLookup interface {
	MountType(key string) (core.MountType, error)
}

// sizeTable maps vehicle sizes to a value. Pricing tables list all four sizes.
type sizeTable[T any] map[core.VehicleSize]T

// lookup returns the entry for size, or a zero value wrapped in sentinel.
func (t sizeTable[T]) lookup(size core.VehicleSize, sentinel error) (T, error) {
	v, ok := t[size]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", sentinel, size)
	}
	return v, nil
}
