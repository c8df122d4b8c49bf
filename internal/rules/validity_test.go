package rules

import (
	"testing"

	"github.com/armourforge/vehicle-builder/internal/modification"
	"github.com/armourforge/vehicle-builder/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchTablesHaveNoHoles(t *testing.T) {
	for _, n := range modification.All() {
		assert.NotNil(t, uniqueRequirements[n], "requirement for %s", n)
		assert.NotNil(t, pricingTable[n].next, "next-cost for %s", n)
		assert.NotNil(t, pricingTable[n].applied, "applied-cost for %s", n)
		assert.NotNil(t, mutations[n], "mutation for %s", n)
	}
}

func TestEveryModificationIsReachable(t *testing.T) {
	cat := testCatalog(t)
	a := NewApplicator(cat)

	for _, vc := range cat.VehicleClasses() {
		for _, n := range modification.All() {
			u := newUnit(t, vc.Name)

			ok, err := IsValid(u, n)
			require.NoError(t, err, "%s on %s", n, vc.Name)

			if !ok {
				continue
			}
			_, err = CostToApplyNext(u, n)
			require.NoError(t, err, "%s on %s", n, vc.Name)

			out, err := a.Apply(u, n)
			require.NoError(t, err, "%s on %s", n, vc.Name)
			assert.Equal(t, 1, out.Quantity(n.String()))

			_, err = CostOfApplied(out, core.AppliedModification{Name: n.String(), Quantity: 1})
			require.NoError(t, err, "%s on %s", n, vc.Name)
		}
	}
}

func TestIsValid_UnknownModification(t *testing.T) {
	u := newUnit(t, "Light Battle Vehicle")
	_, err := IsValid(u, modification.Name(modification.Count))
	assert.ErrorIs(t, err, ErrUnknownModification)
}

func TestIsValid_FixedCapIsMonotonic(t *testing.T) {
	u := newUnit(t, "Light Battle Vehicle")

	assert.True(t, mustValid(t, withApplied(u, modification.VeteranCrew, 0), modification.VeteranCrew))
	assert.False(t, mustValid(t, withApplied(u, modification.VeteranCrew, 1), modification.VeteranCrew))
	assert.False(t, mustValid(t, withApplied(u, modification.VeteranCrew, 2), modification.VeteranCrew))
}

func TestIsValid_CapBySize(t *testing.T) {
	tests := []struct {
		class string
		cap   int
	}{
		{"Light Battle Vehicle", 1},
		{"Heavy Battle Vehicle", 2},
		{"Superheavy Tank", 3},
		{"Behemoth", 3},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			u := newUnit(t, tt.class)
			for q := 0; q <= tt.cap+1; q++ {
				got := mustValid(t, withApplied(u, modification.ImprovedCountermeasures, q), modification.ImprovedCountermeasures)
				assert.Equal(t, q < tt.cap, got, "quantity %d", q)
			}
		})
	}
}

func TestIsValid_CapBySizeUnknownSize(t *testing.T) {
	u := newUnit(t, "Light Battle Vehicle")
	u.Class.Size = core.VehicleSize("Colossal")
	u = withApplied(u, modification.ImprovedCountermeasures, 1)

	_, err := IsValid(u, modification.ImprovedCountermeasures)
	assert.ErrorIs(t, err, ErrUnknownVehicleSize)
}

func TestIsValid_NoLimit(t *testing.T) {
	u := withApplied(newUnit(t, "Heavy Battle Vehicle"), modification.Ram, 7)
	assert.True(t, mustValid(t, u, modification.Ram))
}

func TestIsValid_SizeCompatibility(t *testing.T) {
	assert.False(t, mustValid(t, newUnit(t, "Light Battle Vehicle"), modification.IndependentMovementSubroutines))
	assert.True(t, mustValid(t, newUnit(t, "Behemoth"), modification.IndependentMovementSubroutines))
	assert.False(t, mustValid(t, newUnit(t, "Behemoth"), modification.VeteranCrew))
}

func TestIsValid_SpecialRuleGating(t *testing.T) {
	tests := []struct {
		name  string
		class string
		mod   modification.Name
		want  bool
	}{
		{"required group present", "Light Walker", modification.JumpJets, true},
		{"required group missing", "Light Battle Vehicle", modification.JumpJets, false},
		{"excluded group present", "Light Scout Vehicle", modification.EnhancedSensors, false},
		{"excluded group absent", "Light Battle Vehicle", modification.EnhancedSensors, true},
		{"excluded by substring", "Fast Mover", modification.EnginePowerIncrease, false},
		{"required by substring", "Fast Mover", modification.TailGun, true},
		{"excluded walker", "Heavy Walker", modification.RepulsorDrive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustValid(t, newUnit(t, tt.class), tt.mod))
		})
	}
}

func TestIsValid_MountRequirement(t *testing.T) {
	assert.False(t, mustValid(t, newUnit(t, "Light Flyer"), modification.CommunicationsModule))
	assert.True(t, mustValid(t, newUnit(t, "Light Walker"), modification.CommunicationsModule))
	assert.False(t, mustValid(t, newUnit(t, "Heavy Walker"), modification.CoaxialMount))
	assert.True(t, mustValid(t, newUnit(t, "Heavy Battle Vehicle"), modification.CoaxialMount))
}

func TestIsValid_Exclusivity(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Light Battle Vehicle")

	veteran := applyValid(t, a, u, modification.VeteranCrew)
	assert.False(t, mustValid(t, veteran, modification.GreenCrew))

	green := applyValid(t, a, u, modification.GreenCrew)
	assert.False(t, mustValid(t, green, modification.VeteranCrew))

	reduced := applyValid(t, a, u, modification.EnginePowerReduction)
	assert.False(t, mustValid(t, reduced, modification.EnginePowerIncrease))
}

func TestIsValid_FlammableExcludesShieldingOneWay(t *testing.T) {
	u := newUnit(t, "Heavy Battle Vehicle")

	flammable := withApplied(u, modification.Flammable, 1)
	assert.True(t, mustValid(t, flammable, modification.ExplosiveShielding))

	shielded := withApplied(u, modification.ExplosiveShielding, 1)
	assert.False(t, mustValid(t, shielded, modification.Flammable))
}

func TestIsValid_EnginePowerIncreaseCap(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Light Battle Vehicle")
	require.Equal(t, 4, u.Movement)

	for want := 5; want <= 8; want++ {
		cost, err := CostToApplyNext(u, modification.EnginePowerIncrease)
		require.NoError(t, err)
		assert.Equal(t, 1, cost)

		u = applyValid(t, a, u, modification.EnginePowerIncrease)
		assert.Equal(t, want, u.Movement)
	}

	assert.False(t, mustValid(t, u, modification.EnginePowerIncrease))
	assert.Equal(t, 4, u.Quantity(modification.EnginePowerIncrease.String()))

	total, err := CostOfApplied(u, core.AppliedModification{Name: "Engine Power Increase", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestIsValid_EnginePowerIncreaseCeiling(t *testing.T) {
	u := newUnit(t, "Light Flyer")
	require.Equal(t, 10, u.Movement)
	assert.True(t, mustValid(t, u, modification.EnginePowerIncrease))

	u.Movement = 12
	assert.False(t, mustValid(t, u, modification.EnginePowerIncrease))
}

func TestIsValid_EnginePowerIncreaseBehemoth(t *testing.T) {
	u := newUnit(t, "Behemoth")
	require.Equal(t, 2, u.Movement)

	u.Movement = 7
	assert.True(t, mustValid(t, u, modification.EnginePowerIncrease))

	u.Movement = 8
	assert.False(t, mustValid(t, u, modification.EnginePowerIncrease))
}

func TestIsValid_ReinforcedSideArmour(t *testing.T) {
	a := newApplicator(t)
	u := newUnit(t, "Light Battle Vehicle")
	require.Equal(t, "4/2/1", u.Armour.String())

	u = applyValid(t, a, u, modification.ReinforcedSideArmour)
	assert.Equal(t, 3, u.Armour.SidesValue())

	u = applyValid(t, a, u, modification.ReinforcedSideArmour)
	assert.Equal(t, 4, u.Armour.SidesValue())

	assert.False(t, mustValid(t, u, modification.ReinforcedSideArmour))
}

func TestIsValid_ReinforcedRearArmourNeedsRear(t *testing.T) {
	assert.False(t, mustValid(t, newUnit(t, "Light Walker"), modification.ReinforcedRearArmour))
	assert.True(t, mustValid(t, newUnit(t, "Light Battle Vehicle"), modification.ReinforcedRearArmour))
}

func TestIsValid_WeaponDependentUpgrades(t *testing.T) {
	u := newUnit(t, "Light Battle Vehicle")

	assert.False(t, mustValid(t, u, modification.TargetingProtocols), "no weapons fitted")
	assert.False(t, mustValid(t, u, modification.TwinLinked), "no weapons fitted")

	flamer := equip(t, u, "T1", "Flamer")
	assert.False(t, mustValid(t, flamer, modification.TargetingProtocols), "Close Action")
	assert.True(t, mustValid(t, flamer, modification.TwinLinked))

	rockets := equip(t, u, "T1", "Rocket Pod")
	assert.True(t, mustValid(t, rockets, modification.TargetingProtocols))
	assert.False(t, mustValid(t, rockets, modification.TwinLinked), "Burst")

	both := equip(t, flamer, "F1", "Autocannon")
	assert.True(t, mustValid(t, both, modification.TargetingProtocols))
}

func TestIsValid_ClosedCombatSubstring(t *testing.T) {
	u := equip(t, newUnit(t, "Light Walker"), "A1", "Siege Claw")
	require.True(t, u.Mounts[0].WeaponSpecial().Contains("Close Combat (Crushing)"))

	assert.False(t, mustValid(t, u, modification.TargetingProtocols))
	assert.False(t, mustValid(t, u, modification.TwinLinked))
}

func TestIsValid_CompromiseRequirements(t *testing.T) {
	u := newUnit(t, "Superheavy Tank")
	require.Equal(t, 2, u.Movement)
	assert.False(t, mustValid(t, u, modification.EnginePowerReduction))

	lbv := newUnit(t, "Light Battle Vehicle")
	assert.True(t, mustValid(t, lbv, modification.EnginePowerReduction))
	assert.True(t, mustValid(t, lbv, modification.LightFrontArmour))
	assert.True(t, mustValid(t, lbv, modification.WeakHull))

	lbv.Armour = core.NewArmour(2, core.Facing(2), core.Facing(1))
	assert.False(t, mustValid(t, lbv, modification.LightFrontArmour))

	lbv.HullPoints = 2
	assert.False(t, mustValid(t, lbv, modification.WeakHull))
}
