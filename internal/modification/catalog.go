package modification

import "github.com/armourforge/vehicle-builder/pkg/core"

var (
	allSizes    = []core.VehicleSize{core.Light, core.Heavy, core.Superheavy, core.Behemoth}
	nonBehemoth = []core.VehicleSize{core.Light, core.Heavy, core.Superheavy}
)

// countermeasuresAndHullCap is shared by Improved Countermeasures and Toughened Hull.
var countermeasuresAndHullCap = map[core.VehicleSize]int{
	core.Light:      1,
	core.Heavy:      2,
	core.Superheavy: 3,
	core.Behemoth:   3,
}

var definitions = [...]Definition{
	AAWeaponConfiguration: {
		Kind:            Upgrade,
		Name:            AAWeaponConfiguration,
		Cost:            1,
		CompatibleSizes: allSizes,
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Hull, core.Turret},
	},
	AbominableHorror: {
		Kind:            Upgrade,
		Name:            AbominableHorror,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      NoLimit,
	},
	AdditionalSponsons: {
		Kind:            Upgrade,
		Name:            AdditionalSponsons,
		Cost:            3,
		CompatibleSizes: []core.VehicleSize{core.Superheavy, core.Behemoth},
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Sponsons},
	},
	CoaxialMount: {
		Kind:            Upgrade,
		Name:            CoaxialMount,
		Cost:            1,
		CompatibleSizes: []core.VehicleSize{core.Heavy, core.Superheavy},
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Turret},
	},
	CommunicationsModule: {
		Kind:            Upgrade,
		Name:            CommunicationsModule,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Arm, core.Turret},
	},
	EarlyWarningRadarSystem: {
		Kind:                      Upgrade,
		Name:                      EarlyWarningRadarSystem,
		Cost:                      2,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Flyer"},
	},
	EnginePowerIncrease: {
		Kind:                      Upgrade,
		Name:                      EnginePowerIncrease,
		Cost:                      1,
		CompatibleSizes:           allSizes,
		MaxAllowed:                Special,
		ExcludedSpecialRuleGroups: []string{"Fast Mover"},
		ExclusiveWith:             []Name{EnginePowerReduction},
	},
	EnhancedSensors: {
		Kind:                      Upgrade,
		Name:                      EnhancedSensors,
		Cost:                      1,
		CompatibleSizes:           allSizes,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Flyer", "Recce"},
	},
	ExplosiveShielding: {
		Kind:                      Upgrade,
		Name:                      ExplosiveShielding,
		Cost:                      1,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Flyer", "Walker"},
	},
	ImprovedHandling: {
		Kind:                      Upgrade,
		Name:                      ImprovedHandling,
		Cost:                      1,
		CompatibleSizes:           allSizes,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Flyer", "Walker", "Fast"},
	},
	ImprovedCountermeasures: {
		Kind:            Upgrade,
		Name:            ImprovedCountermeasures,
		Cost:            1,
		CompatibleSizes: allSizes,
		MaxAllowed:      MaxBySize(countermeasuresAndHullCap),
	},
	IncendiaryAmmunition: {
		Kind:            Upgrade,
		Name:            IncendiaryAmmunition,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
	},
	IndependentMovementSubroutines: {
		Kind:            Upgrade,
		Name:            IndependentMovementSubroutines,
		Cost:            15,
		CompatibleSizes: []core.VehicleSize{core.Behemoth},
		MaxAllowed:      Max(1),
	},
	JumpJets: {
		Kind:                      Upgrade,
		Name:                      JumpJets,
		Cost:                      2,
		CompatibleSizes:           []core.VehicleSize{core.Light, core.Heavy},
		MaxAllowed:                Max(1),
		RequiredSpecialRuleGroups: []string{"Walker"},
	},
	LowProfile: {
		Kind:                      Upgrade,
		Name:                      LowProfile,
		Cost:                      1,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Short"},
	},
	MineClearanceEquipment: {
		Kind:                      Upgrade,
		Name:                      MineClearanceEquipment,
		Cost:                      1,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Flyer"},
		RequiredMounts:            []core.MountLocation{core.Arm, core.Fixed, core.Turret},
	},
	OpticRefinement: {
		Kind:            Upgrade,
		Name:            OpticRefinement,
		Cost:            1,
		CompatibleSizes: allSizes,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{PoorOptics},
	},
	Ram: {
		Kind:            Upgrade,
		Name:            Ram,
		Cost:            1,
		CompatibleSizes: allSizes,
		MaxAllowed:      NoLimit,
	},
	ReinforcedFrontArmour: {
		Kind:            Upgrade,
		Name:            ReinforcedFrontArmour,
		Cost:            3,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{LightFrontArmour},
	},
	ReinforcedSideArmour: {
		Kind:                      Upgrade,
		Name:                      ReinforcedSideArmour,
		Cost:                      2,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Special,
		ExcludedSpecialRuleGroups: []string{"Walker"},
		ExclusiveWith:             []Name{LightSecondaryArmour},
	},
	ReinforcedRearArmour: {
		Kind:            Upgrade,
		Name:            ReinforcedRearArmour,
		Cost:            2,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Special,
		ExclusiveWith:   []Name{LightSecondaryArmour},
	},
	ReinforcedMount: {
		Kind:            Upgrade,
		Name:            ReinforcedMount,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
	},
	RepulsorDrive: {
		Kind:                      Upgrade,
		Name:                      RepulsorDrive,
		Cost:                      1,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Walker", "Float"},
	},
	Resilient: {
		Kind:            Upgrade,
		Name:            Resilient,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      NoLimit,
		ExclusiveWith:   []Name{LowMorale},
	},
	ReverseFittedGun: {
		Kind:            Upgrade,
		Name:            ReverseFittedGun,
		Cost:            0,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Fixed},
	},
	SecondaryTurretMount: {
		Kind:            Upgrade,
		Name:            SecondaryTurretMount,
		Cost:            1,
		CompatibleSizes: []core.VehicleSize{core.Superheavy},
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Fixed},
	},
	SelfRepairProtocols: {
		Kind:            Upgrade,
		Name:            SelfRepairProtocols,
		Cost:            2,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
	},
	ShoulderTurrets: {
		Kind:                      Upgrade,
		Name:                      ShoulderTurrets,
		Cost:                      3,
		CompatibleSizes:           []core.VehicleSize{core.Heavy, core.Superheavy},
		MaxAllowed:                Max(1),
		RequiredSpecialRuleGroups: []string{"Walker"},
	},
	SmokeBelcher: {
		Kind:            Upgrade,
		Name:            SmokeBelcher,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Arm, core.Turret},
	},
	SpotterRelay: {
		Kind:                      Upgrade,
		Name:                      SpotterRelay,
		Cost:                      1,
		CompatibleSizes:           []core.VehicleSize{core.Light},
		MaxAllowed:                Max(1),
		ExcludedSpecialRuleGroups: []string{"Scout"},
	},
	TailGun: {
		Kind:                      Upgrade,
		Name:                      TailGun,
		Cost:                      1,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		RequiredSpecialRuleGroups: []string{"Flyer"},
	},
	TargetingProtocols: {
		Kind:            Upgrade,
		Name:            TargetingProtocols,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
	},
	ToughenedHull: {
		Kind:            Upgrade,
		Name:            ToughenedHull,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      MaxBySize(countermeasuresAndHullCap),
		ExclusiveWith:   []Name{WeakHull},
	},
	Transforming: {
		Kind:            Upgrade,
		Name:            Transforming,
		Cost:            3,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
	},
	TurretGrabber: {
		Kind:            Upgrade,
		Name:            TurretGrabber,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		RequiredMounts:  []core.MountLocation{core.Turret},
	},
	TwinLinked: {
		Kind:            Upgrade,
		Name:            TwinLinked,
		Cost:            1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Special,
	},
	UpperTurretConfiguration: {
		Kind:                      Upgrade,
		Name:                      UpperTurretConfiguration,
		Cost:                      0,
		CompatibleSizes:           nonBehemoth,
		MaxAllowed:                Max(1),
		RequiredSpecialRuleGroups: []string{"Walker"},
	},
	VeteranCrew: {
		Kind:            Upgrade,
		Name:            VeteranCrew,
		Cost:            3,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{GreenCrew},
	},

	EnginePowerReduction: {
		Kind:            Compromise,
		Name:            EnginePowerReduction,
		Cost:            -1,
		CompatibleSizes: allSizes,
		MaxAllowed:      Special,
		ExclusiveWith:   []Name{EnginePowerIncrease},
	},
	Flammable: {
		Kind:            Compromise,
		Name:            Flammable,
		Cost:            -1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{ExplosiveShielding},
	},
	GreenCrew: {
		Kind:            Compromise,
		Name:            GreenCrew,
		Cost:            -2,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{VeteranCrew},
	},
	LightFrontArmour: {
		Kind:            Compromise,
		Name:            LightFrontArmour,
		Cost:            -2,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{ReinforcedFrontArmour},
	},
	LightSecondaryArmour: {
		Kind:            Compromise,
		Name:            LightSecondaryArmour,
		Cost:            -1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{ReinforcedSideArmour, ReinforcedRearArmour},
	},
	LowMorale: {
		Kind:            Compromise,
		Name:            LowMorale,
		Cost:            -1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{Resilient},
	},
	MainGunRetrofit: {
		Kind:            Compromise,
		Name:            MainGunRetrofit,
		Cost:            -1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Special,
		RequiredMounts:  []core.MountLocation{core.Turret, core.Fixed},
	},
	PoorOptics: {
		Kind:            Compromise,
		Name:            PoorOptics,
		Cost:            -1,
		CompatibleSizes: allSizes,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{OpticRefinement},
	},
	WeakHull: {
		Kind:            Compromise,
		Name:            WeakHull,
		Cost:            -1,
		CompatibleSizes: nonBehemoth,
		MaxAllowed:      Max(1),
		ExclusiveWith:   []Name{ToughenedHull},
	},
}

// Compile-time check: every Name has a catalog row.
var _ [len(definitions) - Count]struct{}
var _ [Count - len(definitions)]struct{}
