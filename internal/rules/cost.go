package rules

import (
	"fmt"

	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
)

// pricing holds the two cost formulas of a modification. next is the price of
// instance q+1 when q are applied; applied is the total for q instances.
type pricing struct {
	next    func(def modification.Definition, size core.VehicleSize, q int) (int, error)
	applied func(def modification.Definition, size core.VehicleSize, q int) (int, error)
}

// CostToApplyNext returns the marginal cost of one more instance of name.
func CostToApplyNext(u core.Unit, name modification.Name) (int, error) {
	def, err := modification.Lookup(name)
	if err != nil {
		return 0, err
	}
	cost, err := pricingTable[name].next(def, u.Size(), u.Quantity(name.String()))
	if err != nil {
		return 0, fmt.Errorf("pricing %s: %w", name, err)
	}
	return cost, nil
}

// CostOfApplied returns the total cost of the applied instances in am.
func CostOfApplied(u core.Unit, am core.AppliedModification) (int, error) {
	def, err := modification.LookupString(am.Name)
	if err != nil {
		return 0, err
	}
	cost, err := pricingTable[def.Name].applied(def, u.Size(), am.Quantity)
	if err != nil {
		return 0, fmt.Errorf("pricing %s: %w", def.Name, err)
	}
	return cost, nil
}

// UnitCost is the class base cost plus fitted weapons plus every applied modification.
func UnitCost(u core.Unit) (int, error) {
	total := u.Class.BaseCost + u.WeaponCost()
	for _, am := range u.Modifications {
		cost, err := CostOfApplied(u, am)
		if err != nil {
			return 0, err
		}
		total += cost
	}
	return total, nil
}

// OverMaxCost reports whether u costs more than its class allows.
func OverMaxCost(u core.Unit) (bool, error) {
	total, err := UnitCost(u)
	if err != nil {
		return false, err
	}
	return total > u.Class.MaxCost, nil
}

var pricingTable = [...]pricing{
	modification.AAWeaponConfiguration: stepBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 1, core.Superheavy: 1, core.Behemoth: 3,
	}),
	modification.AbominableHorror:   triangular(1),
	modification.AdditionalSponsons: stepBySize(sizeTable[int]{
		core.Light: 3, core.Heavy: 3, core.Superheavy: 3, core.Behemoth: 5,
	}),
	modification.CoaxialMount:            flat,
	modification.CommunicationsModule:    flat,
	modification.EarlyWarningRadarSystem: flat,
	modification.EnginePowerIncrease: linearBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 1, core.Superheavy: 1, core.Behemoth: 3,
	}),
	modification.EnhancedSensors: stepBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 1, core.Superheavy: 1, core.Behemoth: 3,
	}),
	modification.ExplosiveShielding: flat,
	modification.ImprovedHandling: stepBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 2, core.Superheavy: 2, core.Behemoth: 5,
	}),
	modification.ImprovedCountermeasures:        countermeasures,
	modification.IncendiaryAmmunition:           flat,
	modification.IndependentMovementSubroutines: flat,
	modification.JumpJets:                       flat,
	modification.LowProfile:                     flat,
	modification.MineClearanceEquipment:         flat,
	modification.OpticRefinement: stepBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 1, core.Superheavy: 1, core.Behemoth: 5,
	}),
	modification.Ram: triangularBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 1, core.Superheavy: 1, core.Behemoth: 2,
	}),
	modification.ReinforcedFrontArmour: flat,
	modification.ReinforcedSideArmour:  flat,
	modification.ReinforcedRearArmour:  flat,
	modification.ReinforcedMount:       free,
	modification.RepulsorDrive: linearBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 2, core.Superheavy: 1, core.Behemoth: 1,
	}),
	modification.Resilient:            triangular(1),
	modification.ReverseFittedGun:     flat,
	modification.SecondaryTurretMount: flat,
	modification.SelfRepairProtocols:  flat,
	modification.ShoulderTurrets:      flat,
	modification.SmokeBelcher:         flat,
	modification.SpotterRelay:         flat,
	modification.TailGun: linearBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 2, core.Superheavy: 2, core.Behemoth: 2,
	}),
	modification.TargetingProtocols: flat,
	modification.ToughenedHull:      flat,
	modification.Transforming: linearBySize(sizeTable[int]{
		core.Light: 3, core.Heavy: 5, core.Superheavy: 8,
	}),
	modification.TurretGrabber: flat,
	modification.TwinLinked: linearBySize(sizeTable[int]{
		core.Light: 1, core.Heavy: 2, core.Superheavy: 2, core.Behemoth: 2,
	}),
	modification.UpperTurretConfiguration: flat,
	modification.VeteranCrew:              flat,
	modification.EnginePowerReduction:     flat,
	modification.Flammable:                flat,
	modification.GreenCrew:                flat,
	modification.LightFrontArmour:         flat,
	modification.LightSecondaryArmour:     flat,
	modification.LowMorale:                flat,
	modification.MainGunRetrofit:          flat,
	modification.PoorOptics:               flat,
	modification.WeakHull:                 flat,
}

var _ [len(pricingTable) - modification.Count]struct{}
var _ [modification.Count - len(pricingTable)]struct{}

// flat charges the catalog cost per instance.
var flat = pricing{
	next: func(def modification.Definition, _ core.VehicleSize, _ int) (int, error) {
		return def.Cost, nil
	},
	applied: func(def modification.Definition, _ core.VehicleSize, q int) (int, error) {
		return def.Cost * q, nil
	},
}

var free = pricing{
	next:    func(modification.Definition, core.VehicleSize, int) (int, error) { return 0, nil },
	applied: func(modification.Definition, core.VehicleSize, int) (int, error) { return 0, nil },
}

// stepBySize charges a size-dependent price that does not scale with quantity.
func stepBySize(t sizeTable[int]) pricing {
	price := func(_ modification.Definition, size core.VehicleSize, _ int) (int, error) {
		return t.lookup(size, ErrUnknownVehicleSize)
	}
	return pricing{next: price, applied: price}
}

// linearBySize charges a size-dependent rate per instance.
func linearBySize(t sizeTable[int]) pricing {
	return pricing{
		next: func(_ modification.Definition, size core.VehicleSize, _ int) (int, error) {
			return t.lookup(size, ErrUnknownVehicleSize)
		},
		applied: func(_ modification.Definition, size core.VehicleSize, q int) (int, error) {
			rate, err := t.lookup(size, ErrUnknownVehicleSize)
			return rate * q, err
		},
	}
}

// triangular makes the Nth instance cost N×factor, so q instances cost
// factor×q(q+1)/2.
func triangular(factor int) pricing {
	return triangularBySize(sizeTable[int]{
		core.Light: factor, core.Heavy: factor, core.Superheavy: factor, core.Behemoth: factor,
	})
}

func triangularBySize(t sizeTable[int]) pricing {
	return pricing{
		next: func(_ modification.Definition, size core.VehicleSize, q int) (int, error) {
			factor, err := t.lookup(size, ErrUnknownVehicleSize)
			return factor * (q + 1), err
		},
		applied: func(_ modification.Definition, size core.VehicleSize, q int) (int, error) {
			factor, err := t.lookup(size, ErrUnknownVehicleSize)
			return factor * q * (q + 1) / 2, err
		},
	}
}

// countermeasures is triangular below Behemoth size and a flat 2 for Behemoths.
var countermeasures = pricing{
	next: func(_ modification.Definition, size core.VehicleSize, q int) (int, error) {
		switch size {
		case core.Behemoth:
			return 2, nil
		case core.Light, core.Heavy, core.Superheavy:
			return q + 1, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownVehicleSize, size)
		}
	},
	applied: func(_ modification.Definition, size core.VehicleSize, q int) (int, error) {
		switch size {
		case core.Behemoth:
			return 2, nil
		case core.Light, core.Heavy, core.Superheavy:
			return q * (q + 1) / 2, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrUnknownVehicleSize, size)
		}
	},
}
