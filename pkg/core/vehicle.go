// pkg/core/vehicle.go
package core

// VehicleClass is the template a unit is built from.
// Mounts is the base mount layout, in the order the catalog declares it.
type VehicleClass struct {
	Name       string       `json:"name"`
	Size       VehicleSize  `json:"size"`
	BaseCost   int          `json:"baseCost"`
	MaxCost    int          `json:"maxCost"`
	Movement   int          `json:"movement"`
	Optics     int          `json:"optics"`
	Discipline int          `json:"discipline"`
	Morale     int          `json:"morale"`
	HullPoints int          `json:"hullPoints"`
	Armour     Armour       `json:"armour"`
	Special    SpecialRules `json:"special"`
	Mounts     []MountType  `json:"mounts"`
}

// Clone returns a deep copy. Catalog classes are shared, so units hold a copy.
func (vc VehicleClass) Clone() VehicleClass {
	out := vc
	out.Armour = NewArmour(vc.Armour.Front, vc.Armour.Sides, vc.Armour.Rear)
	out.Special = vc.Special.Clone()
	out.Mounts = make([]MountType, len(vc.Mounts))
	for i, mt := range vc.Mounts {
		out.Mounts[i] = mt.Clone()
	}
	return out
}
