package rules

import (
	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
)

// IsValid reports whether one more instance of name may be applied to u.
// A false result is a normal rejection; errors are reserved for names outside
// the catalog and sizes missing from a size-dependent cap.
func IsValid(u core.Unit, name modification.Name) (bool, error) {
	def, err := modification.Lookup(name)
	if err != nil {
		return false, err
	}

	below, err := belowInstanceCap(def, u)
	if err != nil || !below {
		return false, err
	}

	return u.IsOneOfSizes(def.CompatibleSizes) &&
		meetsSpecialRuleRequirements(def, u.Special) &&
		u.HasAtLeastOneOfMounts(def.RequiredMounts) &&
		hasNoExclusiveModifications(def, u) &&
		uniqueRequirements[name](u), nil
}

func belowInstanceCap(def modification.Definition, u core.Unit) (bool, error) {
	applied := u.Quantity(def.Name.String())
	if applied == 0 {
		return true, nil
	}

	switch def.MaxAllowed.Kind {
	case modification.LimitFixed:
		return applied < def.MaxAllowed.Count, nil
	case modification.LimitBySize:
		limit, err := sizeTable[int](def.MaxAllowed.PerSize).lookup(u.Size(), ErrUnknownVehicleSize)
		if err != nil {
			return false, err
		}
		return applied < limit, nil
	default:
		// LimitNone always passes; LimitSpecial is decided by the unique requirement.
		return true, nil
	}
}

func meetsSpecialRuleRequirements(def modification.Definition, special core.SpecialRules) bool {
	if len(def.RequiredSpecialRuleGroups) > 0 && !special.AnyContains(def.RequiredSpecialRuleGroups...) {
		return false
	}
	return !special.AnyContains(def.ExcludedSpecialRuleGroups...)
}

func hasNoExclusiveModifications(def modification.Definition, u core.Unit) bool {
	for _, other := range def.ExclusiveWith {
		if u.HasModification(other.String()) {
			return false
		}
	}
	return true
}

type requirement func(core.Unit) bool

// uniqueRequirements holds the state-dependent check of every modification.
var uniqueRequirements = [...]requirement{
	modification.AAWeaponConfiguration:          always,
	modification.AbominableHorror:               always,
	modification.AdditionalSponsons:             always,
	modification.CoaxialMount:                   always,
	modification.CommunicationsModule:           always,
	modification.EarlyWarningRadarSystem:        always,
	modification.EnginePowerIncrease:            engineHasHeadroom,
	modification.EnhancedSensors:                always,
	modification.ExplosiveShielding:             always,
	modification.ImprovedHandling:               always,
	modification.ImprovedCountermeasures:        always,
	modification.IncendiaryAmmunition:           always,
	modification.IndependentMovementSubroutines: always,
	modification.JumpJets:                       always,
	modification.LowProfile:                     always,
	modification.MineClearanceEquipment:         always,
	modification.OpticRefinement:                always,
	modification.Ram:                            always,
	modification.ReinforcedFrontArmour:          always,
	modification.ReinforcedSideArmour:           sidesBelowFront,
	modification.ReinforcedRearArmour:           rearBelowFront,
	modification.ReinforcedMount:                always,
	modification.RepulsorDrive:                  always,
	modification.Resilient:                      always,
	modification.ReverseFittedGun:               always,
	modification.SecondaryTurretMount:           always,
	modification.SelfRepairProtocols:            always,
	modification.ShoulderTurrets:                always,
	modification.SmokeBelcher:                   always,
	modification.SpotterRelay:                   always,
	modification.TailGun:                        always,
	modification.TargetingProtocols:             hasWeaponWithout("Close Combat", "Close Action"),
	modification.ToughenedHull:                  always,
	modification.Transforming:                   always,
	modification.TurretGrabber:                  always,
	modification.TwinLinked:                     hasWeaponWithout("Close Combat", "Bomb", "Burst"),
	modification.UpperTurretConfiguration:       always,
	modification.VeteranCrew:                    always,
	modification.EnginePowerReduction:           movementAbove(2),
	modification.Flammable:                      always,
	modification.GreenCrew:                      always,
	modification.LightFrontArmour:               frontAboveSecondary,
	modification.LightSecondaryArmour:           always,
	modification.LowMorale:                      always,
	modification.MainGunRetrofit:                always,
	modification.PoorOptics:                     always,
	modification.WeakHull:                       hullAbove(2),
}

var _ [len(uniqueRequirements) - modification.Count]struct{}
var _ [modification.Count - len(uniqueRequirements)]struct{}

func always(core.Unit) bool { return true }

// engineHasHeadroom caps movement at twice the class movement, never above 12.
// Behemoths may always reach 8.
func engineHasHeadroom(u core.Unit) bool {
	if u.Size() == core.Behemoth && u.Movement < 8 {
		return true
	}
	return u.Movement < min(12, 2*u.Class.Movement)
}

func sidesBelowFront(u core.Unit) bool {
	return u.Armour.HasSides() && u.Armour.SidesValue() < u.Armour.Front
}

func rearBelowFront(u core.Unit) bool {
	return u.Armour.HasRear() && u.Armour.RearValue() < u.Armour.Front
}

func frontAboveSecondary(u core.Unit) bool {
	return u.Armour.Front > max(u.Armour.SidesValue(), u.Armour.RearValue())
}

func movementAbove(n int) requirement {
	return func(u core.Unit) bool { return u.Movement > n }
}

func hullAbove(n int) requirement {
	return func(u core.Unit) bool { return u.HullPoints > n }
}

// hasWeaponWithout reports whether at least one fitted weapon carries no
// special rule containing any of the disqualifying substrings. Mount overrides
// count as the weapon's rules.
func hasWeaponWithout(disqualifying ...string) requirement {
	return func(u core.Unit) bool {
		for _, m := range u.Mounts.Filled() {
			if !m.WeaponSpecial().AnyContains(disqualifying...) {
				return true
			}
		}
		return false
	}
}
