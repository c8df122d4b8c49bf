package modification

import (
	"fmt"
	"slices"

	"github.com/armourforge/vehicle-builder/pkg/core"
)

// LimitKind is the shape of a modification's instance cap.
type LimitKind int

const (
	// LimitFixed caps instances at a fixed count.
	LimitFixed LimitKind = iota
	// LimitBySize caps instances at a count that depends on vehicle size.
	LimitBySize
	// LimitNone never caps instances.
	LimitNone
	// LimitSpecial defers entirely to the modification's own requirement check.
	LimitSpecial
)

// Limit is the maximum-allowed-instances policy of a modification.
type Limit struct {
	Kind    LimitKind
	Count   int
	PerSize map[core.VehicleSize]int
}

// Max returns a fixed cap of n instances.
func Max(n int) Limit { return Limit{Kind: LimitFixed, Count: n} }

// MaxBySize returns a cap that varies with vehicle size.
func MaxBySize(perSize map[core.VehicleSize]int) Limit {
	return Limit{Kind: LimitBySize, PerSize: perSize}
}

// NoLimit never caps instances.
var NoLimit = Limit{Kind: LimitNone}

// Special defers the cap to the modification's requirement check.
var Special = Limit{Kind: LimitSpecial}

func (l Limit) String() string {
	switch l.Kind {
	case LimitFixed:
		return fmt.Sprintf("%d", l.Count)
	case LimitBySize:
		return "by size"
	case LimitNone:
		return "no-limit"
	case LimitSpecial:
		return "special"
	default:
		return fmt.Sprintf("LimitKind(%d)", int(l.Kind))
	}
}

// Definition is one row of the modification catalog.
type Definition struct {
	Kind                      Kind
	Name                      Name
	Cost                      int
	CompatibleSizes           []core.VehicleSize
	MaxAllowed                Limit
	RequiredSpecialRuleGroups []string
	ExcludedSpecialRuleGroups []string
	RequiredMounts            []core.MountLocation
	ExclusiveWith             []Name
}

// IsExclusiveWith reports whether other appears in this row's exclusivity list.
func (d Definition) IsExclusiveWith(other Name) bool {
	return slices.Contains(d.ExclusiveWith, other)
}

// Lookup returns the catalog row for name.
func Lookup(name Name) (Definition, error) {
	if !name.Valid() {
		return Definition{}, fmt.Errorf("%w: %s", ErrUnknownModification, name)
	}
	return definitions[name], nil
}

// LookupString parses s and returns the catalog row.
func LookupString(s string) (Definition, error) {
	name, err := Parse(s)
	if err != nil {
		return Definition{}, err
	}
	return Lookup(name)
}

// Upgrades returns every upgrade row in catalog order.
func Upgrades() []Definition { return ofKind(Upgrade) }

// Compromises returns every compromise row in catalog order.
func Compromises() []Definition { return ofKind(Compromise) }

func ofKind(k Kind) []Definition {
	var out []Definition
	for _, d := range definitions {
		if d.Kind == k {
			out = append(out, d)
		}
	}
	return out
}

// unimplemented is the set of modifications that are accepted as legal but
// whose application changes nothing beyond the applied-modification record.
var unimplemented = []Name{
	ReinforcedMount,
	SmokeBelcher,
	TargetingProtocols,
	TwinLinked,
	MainGunRetrofit,
}

// Unimplemented returns the placeholder modifications.
func Unimplemented() []Name {
	return slices.Clone(unimplemented)
}

// IsUnimplemented reports whether name is a placeholder.
func IsUnimplemented(name Name) bool {
	return slices.Contains(unimplemented, name)
}
