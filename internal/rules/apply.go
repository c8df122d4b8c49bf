package rules

import (
	"fmt"

	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
)

// Applicator applies modifications to units. It needs a mount-type lookup for
// the mutations that add mounts.
type Applicator struct {
	mounts MountTypeLookup
}

// NewApplicator creates an applicator resolving mount types through mounts.
func NewApplicator(mounts MountTypeLookup) *Applicator {
	return &Applicator{mounts: mounts}
}

type mutation func(a *Applicator, u core.Unit) (core.Unit, error)

// Apply returns a new unit with one more instance of name applied. The input
// unit is left unchanged. Apply does not check validity; callers gate on
// IsValid first.
func (a *Applicator) Apply(u core.Unit, name modification.Name) (core.Unit, error) {
	if !name.Valid() {
		return core.Unit{}, fmt.Errorf("%w: %s", ErrUnknownModification, name)
	}
	out, err := mutations[name](a, u.Clone())
	if err != nil {
		return core.Unit{}, fmt.Errorf("applying %s: %w", name, err)
	}
	return out.WithModificationRecorded(name.String()), nil
}

var mutations = [...]mutation{
	modification.AAWeaponConfiguration:          addOverride("Anti-Air"),
	modification.AbominableHorror:               noop,
	modification.AdditionalSponsons:             addMount(sponsonsForAdditionalSponsons, modification.AdditionalSponsons),
	modification.CoaxialMount:                   addMount(coaxialBySize, modification.CoaxialMount),
	modification.CommunicationsModule:           removeMount(greatestID, core.Turret, core.Arm),
	modification.EarlyWarningRadarSystem:        noop,
	modification.EnginePowerIncrease:            adjustMovement(1),
	modification.EnhancedSensors:                insertTag("Recce"),
	modification.ExplosiveShielding:             noop,
	modification.ImprovedHandling:               insertTag("Fast"),
	modification.ImprovedCountermeasures:        noop,
	modification.IncendiaryAmmunition:           addOverride("Inferno"),
	modification.IndependentMovementSubroutines: noop,
	modification.JumpJets:                       noop,
	modification.LowProfile:                     insertTag("Short"),
	modification.MineClearanceEquipment:         removeMount(byLocationThenIDDesc, core.Turret, core.Fixed, core.Arm),
	modification.OpticRefinement:                adjustOptics(2),
	modification.Ram:                            noop,
	modification.ReinforcedFrontArmour:          adjustArmour(core.Armour.AdjustFront, 1),
	modification.ReinforcedSideArmour:           adjustArmour(core.Armour.AdjustSides, 1),
	modification.ReinforcedRearArmour:           adjustArmour(core.Armour.AdjustRear, 1),
	modification.ReinforcedMount:                noop,
	modification.RepulsorDrive:                  repulsorDrive,
	modification.Resilient:                      adjustMorale(1),
	modification.ReverseFittedGun:               noop,
	modification.SecondaryTurretMount:           secondaryTurretMount,
	modification.SelfRepairProtocols:            noop,
	modification.ShoulderTurrets:                addMount(sponsonsForShoulderTurrets, modification.ShoulderTurrets),
	modification.SmokeBelcher:                   noop,
	modification.SpotterRelay:                   insertTag("Scout"),
	modification.TailGun:                        addMount(hullBySize, modification.TailGun),
	modification.TargetingProtocols:             noop,
	modification.ToughenedHull:                  adjustHull(2),
	modification.Transforming:                   noop,
	modification.TurretGrabber:                  turretGrabber,
	modification.TwinLinked:                     noop,
	modification.UpperTurretConfiguration:       upperTurretConfiguration,
	modification.VeteranCrew:                    adjustDiscipline(1),
	modification.EnginePowerReduction:           adjustMovement(-1),
	modification.Flammable:                      noop,
	modification.GreenCrew:                      adjustDiscipline(-1),
	modification.LightFrontArmour:               adjustArmour(core.Armour.AdjustFront, -1),
	modification.LightSecondaryArmour:           lightSecondaryArmour,
	modification.LowMorale:                      adjustMorale(-1),
	modification.MainGunRetrofit:                noop,
	modification.PoorOptics:                     adjustOptics(-1),
	modification.WeakHull:                       adjustHull(-2),
}

var _ [len(mutations) - modification.Count]struct{}
var _ [modification.Count - len(mutations)]struct{}

func noop(_ *Applicator, u core.Unit) (core.Unit, error) { return u, nil }

func adjustMovement(delta int) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Movement += delta
		return u, nil
	}
}

func adjustOptics(delta int) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Optics += delta
		return u, nil
	}
}

func adjustDiscipline(delta int) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Discipline += delta
		return u, nil
	}
}

func adjustMorale(delta int) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Morale += delta
		return u, nil
	}
}

func adjustHull(delta int) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.HullPoints += delta
		return u, nil
	}
}

func adjustArmour(facing func(core.Armour, int) core.Armour, delta int) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Armour = facing(u.Armour, delta)
		return u, nil
	}
}

func lightSecondaryArmour(_ *Applicator, u core.Unit) (core.Unit, error) {
	u.Armour = u.Armour.AdjustSides(-1).AdjustRear(-1)
	return u, nil
}

func insertTag(tag string) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Special = u.Special.Insert(tag)
		return u, nil
	}
}

// repulsorDrive replaces Relentless and Short with Float. A unit that already
// floats is left as it is.
func repulsorDrive(_ *Applicator, u core.Unit) (core.Unit, error) {
	if u.Special.Contains("Float") {
		return u, nil
	}
	u.Special = u.Special.Remove("Relentless", "Short").Insert("Float")
	return u, nil
}

func addOverride(tag string) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		u.Mounts = u.Mounts.WithSpecialOverride(tag)
		return u, nil
	}
}

// addMount adds an empty mount named after the modification.
func addMount(table sizeTable[string], name modification.Name) mutation {
	return func(a *Applicator, u core.Unit) (core.Unit, error) {
		m, err := a.newMount(table, u.Size(), name.String())
		if err != nil {
			return core.Unit{}, err
		}
		mounts, err := u.Mounts.Add(m)
		if err != nil {
			return core.Unit{}, err
		}
		u.Mounts = mounts
		return u, nil
	}
}

type mountSelector func(ms core.Mounts, locs ...core.MountLocation) (core.Mount, error)

// removeMount removes the mount pick selects among those at locs.
func removeMount(pick mountSelector, locs ...core.MountLocation) mutation {
	return func(_ *Applicator, u core.Unit) (core.Unit, error) {
		target, err := pick(u.Mounts, locs...)
		if err != nil {
			return core.Unit{}, err
		}
		mounts, err := u.Mounts.RemoveByID(target.ID)
		if err != nil {
			return core.Unit{}, err
		}
		u.Mounts = mounts
		return u, nil
	}
}

// swapMount removes the mounts in oldIDs and adds replacement.
func swapMount(u core.Unit, oldIDs []string, replacement core.Mount) (core.Unit, error) {
	mounts := u.Mounts
	var err error
	for _, id := range oldIDs {
		if mounts, err = mounts.RemoveByID(id); err != nil {
			return core.Unit{}, err
		}
	}
	if mounts, err = mounts.Add(replacement); err != nil {
		return core.Unit{}, err
	}
	u.Mounts = mounts
	return u, nil
}

// secondaryTurretMount trades the first Fixed mount for a superheavy turret.
func secondaryTurretMount(a *Applicator, u core.Unit) (core.Unit, error) {
	fixed, err := firstAt(u.Mounts, core.Fixed)
	if err != nil {
		return core.Unit{}, err
	}
	turret, err := a.newMount(secondaryTurretBySize, u.Size(), modification.SecondaryTurretMount.String())
	if err != nil {
		return core.Unit{}, err
	}
	return swapMount(u, []string{fixed.ID}, turret)
}

// turretGrabber trades the first Turret mount for an arm of the unit's size.
func turretGrabber(a *Applicator, u core.Unit) (core.Unit, error) {
	turret, err := firstAt(u.Mounts, core.Turret)
	if err != nil {
		return core.Unit{}, err
	}
	arm, err := a.newMount(armBySize, u.Size(), modification.TurretGrabber.String())
	if err != nil {
		return core.Unit{}, err
	}
	return swapMount(u, []string{turret.ID}, arm)
}

// upperTurretConfiguration trades every Arm mount for a single turret.
func upperTurretConfiguration(a *Applicator, u core.Unit) (core.Unit, error) {
	arms := u.Mounts.AtLocations(core.Arm)
	if len(arms) == 0 {
		return core.Unit{}, fmt.Errorf("%w: need an %s mount", ErrNoQualifyingMount, core.Arm)
	}
	turret, err := a.newMount(turretBySize, u.Size(), modification.UpperTurretConfiguration.String())
	if err != nil {
		return core.Unit{}, err
	}
	ids := make([]string, len(arms))
	for i, m := range arms {
		ids[i] = m.ID
	}
	return swapMount(u, ids, turret)
}
