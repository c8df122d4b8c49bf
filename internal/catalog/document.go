package catalog

import (
	"fmt"
	"slices"

	"github.com/armourforge/vehicle-builder/pkg/core"
)

// document mirrors the YAML layout of catalog.yaml.
type document struct {
	WeaponTypes    []weaponTypeDoc   `yaml:"weaponTypes"`
	MountTypes     []mountTypeDoc    `yaml:"mountTypes"`
	VehicleClasses []vehicleClassDoc `yaml:"vehicleClasses"`
}

type weaponTypeDoc struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Cost     int      `yaml:"cost"`
	Rating   string   `yaml:"rating"`
	Special  []string `yaml:"special"`
}

func (w weaponTypeDoc) toCore() core.WeaponType {
	return core.WeaponType{
		Name:     w.Name,
		Category: w.Category,
		Cost:     w.Cost,
		Rating:   w.Rating,
		Special:  core.NewSpecialRules(w.Special...),
	}
}

type mountTypeDoc struct {
	Key        string   `yaml:"key"`
	Location   string   `yaml:"location"`
	Compatible []string `yaml:"compatible"`
}

func (m mountTypeDoc) toCore() (core.MountType, error) {
	loc, err := core.ParseMountLocation(m.Location)
	if err != nil {
		return core.MountType{}, fmt.Errorf("mount type %q: %w", m.Key, err)
	}
	return core.MountType{
		Key:        m.Key,
		Location:   loc,
		Compatible: slices.Clone(m.Compatible),
	}, nil
}

type armourDoc struct {
	Front int  `yaml:"front"`
	Sides *int `yaml:"sides"`
	Rear  *int `yaml:"rear"`
}

type vehicleClassDoc struct {
	Name       string    `yaml:"name"`
	Size       string    `yaml:"size"`
	BaseCost   int       `yaml:"baseCost"`
	MaxCost    int       `yaml:"maxCost"`
	Movement   int       `yaml:"movement"`
	Optics     int       `yaml:"optics"`
	Discipline int       `yaml:"discipline"`
	Morale     int       `yaml:"morale"`
	HullPoints int       `yaml:"hullPoints"`
	Armour     armourDoc `yaml:"armour"`
	Special    []string  `yaml:"special"`
	Mounts     []string  `yaml:"mounts"`
}

func (v vehicleClassDoc) toCore(mounts map[string]core.MountType) (core.VehicleClass, error) {
	size, err := core.ParseVehicleSize(v.Size)
	if err != nil {
		return core.VehicleClass{}, fmt.Errorf("vehicle class %q: %w", v.Name, err)
	}

	layout := make([]core.MountType, 0, len(v.Mounts))
	for _, key := range v.Mounts {
		mt, ok := mounts[key]
		if !ok {
			return core.VehicleClass{}, fmt.Errorf("vehicle class %q: %w: %q", v.Name, ErrUnknownMountType, key)
		}
		layout = append(layout, mt)
	}

	return core.VehicleClass{
		Name:       v.Name,
		Size:       size,
		BaseCost:   v.BaseCost,
		MaxCost:    v.MaxCost,
		Movement:   v.Movement,
		Optics:     v.Optics,
		Discipline: v.Discipline,
		Morale:     v.Morale,
		HullPoints: v.HullPoints,
		Armour:     core.NewArmour(v.Armour.Front, v.Armour.Sides, v.Armour.Rear),
		Special:    core.NewSpecialRules(v.Special...),
		Mounts:     layout,
	}, nil
}
