package rules

import (
	"slices"
	"strings"
	"testing"

	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_LeavesInputUnchanged(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Superheavy Tank")
	before := u.Clone()

	for _, name := range []modification.Name{
		modification.EnginePowerReduction,
		modification.AdditionalSponsons,
		modification.SecondaryTurretMount,
		modification.RepulsorDrive,
		modification.AAWeaponConfiguration,
		modification.LightSecondaryArmour,
	} {
		_, err := a.Apply(u, name)
		require.NoError(t, err, name.String())
	}

	assert.Equal(t, before, u)
}

func TestApply_RecordsQuantity(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Heavy Battle Vehicle")

	u = applyValid(t, a, u, modification.Resilient)
	u = applyValid(t, a, u, modification.Ram)
	u = applyValid(t, a, u, modification.Resilient)

	assert.Equal(t, []core.AppliedModification{
		{Name: "Resilient", Quantity: 2},
		{Name: "Ram", Quantity: 1},
	}, u.Modifications)
}

func TestApply_UnknownModification(t *testing.T) {
	_, err := newApplicator(t).Apply(newUnit(t, "Light Battle Vehicle"), modification.Name(modification.Count))
	assert.ErrorIs(t, err, ErrUnknownModification)
}

func TestApply_StatDeltas(t *testing.T) {
	tests := []struct {
		name  modification.Name
		field func(core.Unit) int
		delta int
	}{
		{modification.EnginePowerIncrease, func(u core.Unit) int { return u.Movement }, 1},
		{modification.EnginePowerReduction, func(u core.Unit) int { return u.Movement }, -1},
		{modification.OpticRefinement, func(u core.Unit) int { return u.Optics }, 2},
		{modification.PoorOptics, func(u core.Unit) int { return u.Optics }, -1},
		{modification.VeteranCrew, func(u core.Unit) int { return u.Discipline }, 1},
		{modification.GreenCrew, func(u core.Unit) int { return u.Discipline }, -1},
		{modification.Resilient, func(u core.Unit) int { return u.Morale }, 1},
		{modification.LowMorale, func(u core.Unit) int { return u.Morale }, -1},
		{modification.ToughenedHull, func(u core.Unit) int { return u.HullPoints }, 2},
		{modification.WeakHull, func(u core.Unit) int { return u.HullPoints }, -2},
	}

	a := newApplicator(t)
	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			u := newUnit(t, "Heavy Battle Vehicle")
			out := applyValid(t, a, u, tt.name)
			assert.Equal(t, tt.field(u)+tt.delta, tt.field(out))
		})
	}
}

func TestApply_ArmourDeltas(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Heavy Battle Vehicle")
	require.Equal(t, "6/4/2", u.Armour.String())

	assert.Equal(t, "7/4/2", applyValid(t, a, u, modification.ReinforcedFrontArmour).Armour.String())
	assert.Equal(t, "6/5/2", applyValid(t, a, u, modification.ReinforcedSideArmour).Armour.String())
	assert.Equal(t, "6/4/3", applyValid(t, a, u, modification.ReinforcedRearArmour).Armour.String())
	assert.Equal(t, "5/4/2", applyValid(t, a, u, modification.LightFrontArmour).Armour.String())
	assert.Equal(t, "6/3/1", applyValid(t, a, u, modification.LightSecondaryArmour).Armour.String())
}

func TestApply_LightSecondaryArmourClamps(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Light Battle Vehicle")

	for range 5 {
		var err error
		u, err = a.Apply(u, modification.LightSecondaryArmour)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, u.Armour.SidesValue(), 0)
		assert.GreaterOrEqual(t, u.Armour.RearValue(), 0)
	}
	assert.Equal(t, "4/0/0", u.Armour.String())
	assert.True(t, u.Armour.HasSides())
	assert.True(t, u.Armour.HasRear())

	walker := newUnit(t, "Light Walker")
	out, err := a.Apply(walker, modification.LightSecondaryArmour)
	require.NoError(t, err)
	assert.False(t, out.Armour.HasSides())
	assert.False(t, out.Armour.HasRear())
	assert.Equal(t, "3/-/-", out.Armour.String())
}

func TestApply_TagInsertionIsIdempotent(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Heavy Battle Vehicle")

	once := applyValid(t, a, u, modification.ImprovedHandling)
	assert.Equal(t, core.SpecialRules{"Fast"}, once.Special)
	assert.False(t, mustValid(t, once, modification.ImprovedHandling))

	twice, err := a.Apply(once, modification.ImprovedHandling)
	require.NoError(t, err)
	assert.Equal(t, once.Special, twice.Special)
}

func TestApply_TagsStaySortedAndUnique(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Light Battle Vehicle")
	u.Special = core.NewSpecialRules("Relentless", "Tank Hunter")

	for _, name := range []modification.Name{
		modification.SpotterRelay,
		modification.LowProfile,
		modification.EnhancedSensors,
		modification.ImprovedHandling,
		modification.SpotterRelay,
		modification.LowProfile,
	} {
		var err error
		u, err = a.Apply(u, name)
		require.NoError(t, err)
		assert.True(t, slices.IsSorted(u.Special), "after %s: %v", name, u.Special)
		assert.Len(t, u.Special, len(slices.Compact(slices.Clone(u.Special))))
	}

	assert.Equal(t, core.SpecialRules{"Fast", "Recce", "Relentless", "Scout", "Short", "Tank Hunter"}, u.Special)
}

func TestApply_RepulsorDrive(t *testing.T) {
	a := newApplicator(t)

	tank := newUnit(t, "Superheavy Tank")
	require.Equal(t, core.SpecialRules{"Short"}, tank.Special)
	out := applyValid(t, a, tank, modification.RepulsorDrive)
	assert.Equal(t, core.SpecialRules{"Float"}, out.Special)

	u := newUnit(t, "Light Battle Vehicle")
	u.Special = core.NewSpecialRules("Relentless", "Terrifying")
	out, err := a.Apply(u, modification.RepulsorDrive)
	require.NoError(t, err)
	assert.Equal(t, core.SpecialRules{"Float", "Terrifying"}, out.Special)

	u.Special = core.NewSpecialRules("Float", "Short")
	out, err = a.Apply(u, modification.RepulsorDrive)
	require.NoError(t, err)
	assert.Equal(t, core.SpecialRules{"Float", "Short"}, out.Special)
}

func TestApply_SpecialOverrides(t *testing.T) {
	a := newApplicator(t)
	u := equip(t, newUnit(t, "Light Battle Vehicle"), "T1", "Autocannon")

	u = applyValid(t, a, u, modification.AAWeaponConfiguration)
	u = applyValid(t, a, u, modification.IncendiaryAmmunition)

	for _, m := range u.Mounts {
		assert.Equal(t, core.SpecialRules{"Anti-Air", "Inferno"}, m.Overrides, m.ID)
	}
	t1, ok := u.Mounts.Find("T1")
	require.True(t, ok)
	assert.Equal(t, core.SpecialRules{"Anti-Air", "Inferno"}, t1.WeaponSpecial())

	f1, ok := u.Mounts.Find("F1")
	require.True(t, ok)
	assert.Nil(t, f1.WeaponSpecial())

	// Weapons fitted after the upgrade pick up the override too.
	u = equip(t, u, "F1", "Lascannon")
	f1, _ = u.Mounts.Find("F1")
	assert.Equal(t, core.SpecialRules{"Anti-Air", "Armour Piercing", "Inferno"}, f1.WeaponSpecial())
}

func TestApply_AddMount(t *testing.T) {
	tests := []struct {
		name     modification.Name
		class    string
		id       string
		location core.MountLocation
		key      string
	}{
		{modification.CoaxialMount, "Heavy Battle Vehicle", "Coaxial Mount", core.Coaxial, "coaxial"},
		{modification.TailGun, "Light Flyer", "Tail Gun", core.Hull, "light-hull"},
		{modification.TailGun, "Fast Mover", "Tail Gun", core.Hull, "heavy-hull"},
		{modification.ShoulderTurrets, "Heavy Walker", "Shoulder Turrets", core.Sponsons, "heavy-sponsons"},
		{modification.ShoulderTurrets, "Superheavy Walker", "Shoulder Turrets", core.Sponsons, "superheavy-sponsons"},
		{modification.AdditionalSponsons, "Superheavy Tank", "Additional Sponsons", core.Sponsons, "superheavy-sponsons"},
		{modification.AdditionalSponsons, "Behemoth", "Additional Sponsons", core.Sponsons, "behemoth-sponsons"},
	}

	a := newApplicator(t)
	for _, tt := range tests {
		t.Run(tt.name.String()+"/"+tt.class, func(t *testing.T) {
			u := newUnit(t, tt.class)
			out := applyValid(t, a, u, tt.name)

			require.Len(t, out.Mounts, len(u.Mounts)+1)
			m, ok := out.Mounts.Find(tt.id)
			require.True(t, ok)
			assert.True(t, m.Empty())
			assert.Equal(t, tt.location, m.Location())
			assert.Equal(t, tt.key, m.Type.Key)
			assert.True(t, slices.IsSortedFunc(out.Mounts, func(a, b core.Mount) int {
				return strings.Compare(a.ID, b.ID)
			}))
		})
	}
}

func TestApply_AddMountIncompatibleSize(t *testing.T) {
	a := newApplicator(t)

	_, err := a.Apply(newUnit(t, "Light Battle Vehicle"), modification.AdditionalSponsons)
	assert.ErrorIs(t, err, ErrIncompatibleSize)

	_, err = a.Apply(newUnit(t, "Behemoth"), modification.TailGun)
	assert.ErrorIs(t, err, ErrIncompatibleSize)

	_, err = a.Apply(newUnit(t, "Light Walker"), modification.ShoulderTurrets)
	assert.ErrorIs(t, err, ErrIncompatibleSize)
}

func TestApply_CommunicationsModuleRemovesGreatestID(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Light Walker")
	require.Equal(t, []string{"A1", "A2"}, mountIDs(u.Mounts))

	out := applyValid(t, a, u, modification.CommunicationsModule)
	assert.Equal(t, []string{"A1"}, mountIDs(out.Mounts))

	sw := newUnit(t, "Superheavy Walker")
	require.Equal(t, []string{"A1", "A2", "T1"}, mountIDs(sw.Mounts))
	out = applyValid(t, a, sw, modification.CommunicationsModule)
	assert.Equal(t, []string{"A1", "A2"}, mountIDs(out.Mounts))
}

func TestApply_MineClearanceTieBreak(t *testing.T) {
	a := newApplicator(t)

	// Arm sorts before Fixed and Turret; among arms the greatest identity goes.
	walker := newUnit(t, "Heavy Walker")
	out := applyValid(t, a, walker, modification.MineClearanceEquipment)
	assert.Equal(t, []string{"A1", "H1"}, mountIDs(out.Mounts))

	// Fixed sorts before Turret.
	lbv := newUnit(t, "Light Battle Vehicle")
	out = applyValid(t, a, lbv, modification.MineClearanceEquipment)
	assert.Equal(t, []string{"T1"}, mountIDs(out.Mounts))
}

func TestApply_NoQualifyingMount(t *testing.T) {
	a := newApplicator(t)
	flyer := newUnit(t, "Light Flyer")

	for _, name := range []modification.Name{
		modification.CommunicationsModule,
		modification.MineClearanceEquipment,
		modification.SecondaryTurretMount,
		modification.TurretGrabber,
		modification.UpperTurretConfiguration,
	} {
		_, err := a.Apply(flyer, name)
		assert.ErrorIs(t, err, ErrNoQualifyingMount, name.String())
	}
}

func TestApply_MountSwaps(t *testing.T) {
	a := newApplicator(t)

	tank := applyValid(t, a, newUnit(t, "Superheavy Tank"), modification.SecondaryTurretMount)
	assert.Equal(t, []string{"H1", "S1", "Secondary Turret Mount", "T1"}, mountIDs(tank.Mounts))
	assert.Len(t, tank.Mounts.AtLocations(core.Turret), 2)
	assert.False(t, tank.Mounts.HasAnyLocation(core.Fixed))

	lbv := applyValid(t, a, newUnit(t, "Light Battle Vehicle"), modification.TurretGrabber)
	assert.Equal(t, []string{"F1", "Turret Grabber"}, mountIDs(lbv.Mounts))
	grabber, _ := lbv.Mounts.Find("Turret Grabber")
	assert.Equal(t, "light-arm", grabber.Type.Key)

	walker := applyValid(t, a, newUnit(t, "Heavy Walker"), modification.UpperTurretConfiguration)
	assert.Equal(t, []string{"H1", "Upper Turret Configuration"}, mountIDs(walker.Mounts))
	upper, _ := walker.Mounts.Find("Upper Turret Configuration")
	assert.Equal(t, "heavy-turret", upper.Type.Key)
}

func TestApply_NoOps(t *testing.T) {
	a := newApplicator(t)
	noops := []modification.Name{
		modification.AbominableHorror,
		modification.EarlyWarningRadarSystem,
		modification.ExplosiveShielding,
		modification.ImprovedCountermeasures,
		modification.JumpJets,
		modification.Ram,
		modification.ReverseFittedGun,
		modification.SelfRepairProtocols,
		modification.Transforming,
		modification.Flammable,
	}
	noops = append(noops, modification.Unimplemented()...)

	u := equip(t, newUnit(t, "Light Battle Vehicle"), "T1", "Autocannon")
	for _, name := range noops {
		out, err := a.Apply(u, name)
		require.NoError(t, err, name.String())

		out.Modifications = u.Modifications
		assert.Equal(t, u, out, name.String())
	}
}
