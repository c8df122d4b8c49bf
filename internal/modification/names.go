package modification

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrUnknownModification is returned for a name outside the catalog.
var ErrUnknownModification = errors.New("unknown modification")

// Kind separates point-costing upgrades from point-refunding compromises.
type Kind int

const (
	Upgrade Kind = iota
	Compromise
)

func (k Kind) String() string {
	switch k {
	case Upgrade:
		return "Upgrade"
	case Compromise:
		return "Compromise"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Name identifies a modification. The set is closed: every dispatch table in
// the rules package is an array indexed by Name and sized by Count.
type Name int

// Upgrades.
const (
	AAWeaponConfiguration Name = iota
	AbominableHorror
	AdditionalSponsons
	CoaxialMount
	CommunicationsModule
	EarlyWarningRadarSystem
	EnginePowerIncrease
	EnhancedSensors
	ExplosiveShielding
	ImprovedHandling
	ImprovedCountermeasures
	IncendiaryAmmunition
	IndependentMovementSubroutines
	JumpJets
	LowProfile
	MineClearanceEquipment
	OpticRefinement
	Ram
	ReinforcedFrontArmour
	ReinforcedSideArmour
	ReinforcedRearArmour
	ReinforcedMount
	RepulsorDrive
	Resilient
	ReverseFittedGun
	SecondaryTurretMount
	SelfRepairProtocols
	ShoulderTurrets
	SmokeBelcher
	SpotterRelay
	TailGun
	TargetingProtocols
	ToughenedHull
	Transforming
	TurretGrabber
	TwinLinked
	UpperTurretConfiguration
	VeteranCrew

	// Compromises.
	EnginePowerReduction
	Flammable
	GreenCrew
	LightFrontArmour
	LightSecondaryArmour
	LowMorale
	MainGunRetrofit
	PoorOptics
	WeakHull

	nameCount
)

// Count is the number of modification names.
const Count = int(nameCount)

var displayNames = [...]string{
	AAWeaponConfiguration:          "AA Weapon Configuration",
	AbominableHorror:               "Abominable Horror",
	AdditionalSponsons:             "Additional Sponsons",
	CoaxialMount:                   "Coaxial Mount",
	CommunicationsModule:           "Communications Module",
	EarlyWarningRadarSystem:        "Early Warning Radar System",
	EnginePowerIncrease:            "Engine Power Increase",
	EnhancedSensors:                "Enhanced Sensors",
	ExplosiveShielding:             "Explosive Shielding",
	ImprovedHandling:               "Improved Handling",
	ImprovedCountermeasures:        "Improved Countermeasures",
	IncendiaryAmmunition:           "Incendiary Ammunition",
	IndependentMovementSubroutines: "Independent Movement Subroutines",
	JumpJets:                       "Jump Jets",
	LowProfile:                     "Low Profile",
	MineClearanceEquipment:         "Mine Clearance Equipment",
	OpticRefinement:                "Optic Refinement",
	Ram:                            "Ram",
	ReinforcedFrontArmour:          "Reinforced Front Armour",
	ReinforcedSideArmour:           "Reinforced Side Armour",
	ReinforcedRearArmour:           "Reinforced Rear Armour",
	ReinforcedMount:                "Reinforced Mount",
	RepulsorDrive:                  "Repulsor Drive",
	Resilient:                      "Resilient",
	ReverseFittedGun:               "Reverse Fitted Gun",
	SecondaryTurretMount:           "Secondary Turret Mount",
	SelfRepairProtocols:            "Self Repair Protocols",
	ShoulderTurrets:                "Shoulder Turrets",
	SmokeBelcher:                   "Smoke Belcher",
	SpotterRelay:                   "Spotter Relay",
	TailGun:                        "Tail Gun",
	TargetingProtocols:             "Targeting Protocols",
	ToughenedHull:                  "Toughened Hull",
	Transforming:                   "Transforming",
	TurretGrabber:                  "Turret Grabber",
	TwinLinked:                     "Twin Linked",
	UpperTurretConfiguration:       "Upper Turret Configuration",
	VeteranCrew:                    "Veteran Crew",
	EnginePowerReduction:           "Engine Power Reduction",
	Flammable:                      "Flammable",
	GreenCrew:                      "Green Crew",
	LightFrontArmour:               "Light Front Armour",
	LightSecondaryArmour:           "Light Secondary Armour",
	LowMorale:                      "Low Morale",
	MainGunRetrofit:                "Main Gun Retrofit",
	PoorOptics:                     "Poor Optics",
	WeakHull:                       "Weak Hull",
}

// Compile-time check: a new Name without a display name fails to build.
var _ [len(displayNames) - Count]struct{}
var _ [Count - len(displayNames)]struct{}

// Valid reports whether n is inside the closed set.
func (n Name) Valid() bool {
	return n >= 0 && n < nameCount
}

// String returns the display name, e.g. "Engine Power Increase".
func (n Name) String() string {
	if !n.Valid() {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return displayNames[n]
}

// All returns every name in catalog order.
func All() []Name {
	out := make([]Name, Count)
	for i := range out {
		out[i] = Name(i)
	}
	return out
}

var byKey = func() map[string]Name {
	m := make(map[string]Name, Count)
	for _, n := range All() {
		m[normalize(n.String())] = n
	}
	return m
}()

// normalize folds case and drops spaces, hyphens and underscores so that
// "Engine-Power-Increase", "engine power increase" and "EnginePowerIncrease"
// all resolve to the same name.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Parse resolves a modification name from user input.
func Parse(s string) (Name, error) {
	n, ok := byKey[normalize(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownModification, s)
	}
	return n, nil
}
