// pkg/core/size.go
package core

import (
	"fmt"
	"slices"
)

// VehicleSize is the size category of a vehicle class.
type VehicleSize string

const (
	Light      VehicleSize = "Light"
	Heavy      VehicleSize = "Heavy"
	Superheavy VehicleSize = "Superheavy"
	Behemoth   VehicleSize = "Behemoth"
)

// AllSizes lists every size category from smallest to largest.
var AllSizes = []VehicleSize{Light, Heavy, Superheavy, Behemoth}

// ParseVehicleSize validates a size name.
func ParseVehicleSize(s string) (VehicleSize, error) {
	size := VehicleSize(s)
	if !slices.Contains(AllSizes, size) {
		return "", fmt.Errorf("unknown vehicle size: %q", s)
	}
	return size, nil
}

// MountLocation is where on a vehicle a mount sits.
type MountLocation string

const (
	Hull     MountLocation = "Hull"
	Turret   MountLocation = "Turret"
	Arm      MountLocation = "Arm"
	Fixed    MountLocation = "Fixed"
	Sponsons MountLocation = "Sponsons"
	Coaxial  MountLocation = "Coaxial"
)

// AllMountLocations lists every mount location.
var AllMountLocations = []MountLocation{Hull, Turret, Arm, Fixed, Sponsons, Coaxial}

// ParseMountLocation validates a location name.
func ParseMountLocation(s string) (MountLocation, error) {
	loc := MountLocation(s)
	if !slices.Contains(AllMountLocations, loc) {
		return "", fmt.Errorf("unknown mount location: %q", s)
	}
	return loc, nil
}

// IDPrefix is the letter used for mount identities created by the unit factory.
func (l MountLocation) IDPrefix() string {
	if l == "" {
		return "M"
	}
	return string(l[0])
}
