// pkg/core/armour.go
package core

import (
	"fmt"
	"strconv"
)

// Armour holds the protection values of a vehicle.
// Sides and Rear are nil when the vehicle has no such facing; this is not the
// same as a facing with value zero.
type Armour struct {
	Front int  `json:"front"`
	Sides *int `json:"sides"`
	Rear  *int `json:"rear"`
}

// Facing returns a present facing value for use with NewArmour.
func Facing(v int) *int {
	return &v
}

// NewArmour builds an armour value. Negative values are clamped to zero.
func NewArmour(front int, sides, rear *int) Armour {
	return Armour{
		Front: max(front, 0),
		Sides: clampFacing(sides, 0),
		Rear:  clampFacing(rear, 0),
	}
}

// clampFacing copies f, applying delta and clamping at zero. Absent stays absent.
func clampFacing(f *int, delta int) *int {
	if f == nil {
		return nil
	}
	return Facing(max(*f+delta, 0))
}

// HasSides reports whether the side facing applies to this vehicle.
func (a Armour) HasSides() bool { return a.Sides != nil }

// HasRear reports whether the rear facing applies to this vehicle.
func (a Armour) HasRear() bool { return a.Rear != nil }

// SidesValue returns the side value, or 0 when absent.
func (a Armour) SidesValue() int {
	if a.Sides == nil {
		return 0
	}
	return *a.Sides
}

// RearValue returns the rear value, or 0 when absent.
func (a Armour) RearValue() int {
	if a.Rear == nil {
		return 0
	}
	return *a.Rear
}

// AdjustFront returns a copy with the front value changed by delta.
func (a Armour) AdjustFront(delta int) Armour {
	return Armour{
		Front: max(a.Front+delta, 0),
		Sides: clampFacing(a.Sides, 0),
		Rear:  clampFacing(a.Rear, 0),
	}
}

// AdjustSides returns a copy with the side value changed by delta.
func (a Armour) AdjustSides(delta int) Armour {
	return Armour{
		Front: a.Front,
		Sides: clampFacing(a.Sides, delta),
		Rear:  clampFacing(a.Rear, 0),
	}
}

// AdjustRear returns a copy with the rear value changed by delta.
func (a Armour) AdjustRear(delta int) Armour {
	return Armour{
		Front: a.Front,
		Sides: clampFacing(a.Sides, 0),
		Rear:  clampFacing(a.Rear, delta),
	}
}

// Equal compares two armour values, treating absent facings as distinct from zero.
func (a Armour) Equal(b Armour) bool {
	return a.Front == b.Front && facingEqual(a.Sides, b.Sides) && facingEqual(a.Rear, b.Rear)
}

func facingEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// String formats the armour as front/sides/rear, with "-" for absent facings.
func (a Armour) String() string {
	return fmt.Sprintf("%d/%s/%s", a.Front, facingString(a.Sides), facingString(a.Rear))
}

func facingString(f *int) string {
	if f == nil {
		return "-"
	}
	return strconv.Itoa(*f)
}
