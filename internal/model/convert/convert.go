// Package convert provides functions to convert between GORM models and storage builds
package convert

import (
	"encoding/json"
	"fmt"

	"github.com/armourforge/vehicle-builder/internal/model"
	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/armourforge/vehicle-builder/pkg/core"
	"gorm.io/datatypes"
)

// modificationsToJSON converts the applied-modification record for DB storage.
func modificationsToJSON(mods []core.AppliedModification) datatypes.JSON {
	if len(mods) == 0 {
		return datatypes.JSON("[]")
	}
	data, _ := json.Marshal(mods)
	return datatypes.JSON(data)
}

// BuildToSavedUnit converts a storage.Build to a GORM model.SavedUnit.
func BuildToSavedUnit(b storage.Build) (model.SavedUnit, error) {
	snapshot, err := json.Marshal(b.Unit)
	if err != nil {
		return model.SavedUnit{}, fmt.Errorf("encoding unit snapshot: %w", err)
	}

	return model.SavedUnit{
		ID:            b.ID,
		Name:          b.Name,
		ClassName:     b.ClassName,
		Size:          string(b.Unit.Size()),
		Cost:          b.Cost,
		MaxCost:       b.Unit.Class.MaxCost,
		Modifications: modificationsToJSON(b.Unit.Modifications),
		Snapshot:      datatypes.JSON(snapshot),
		SavedAt:       b.SavedAt,
	}, nil
}

// SavedUnitToBuild converts a GORM model.SavedUnit back to a storage.Build.
func SavedUnitToBuild(s model.SavedUnit) (storage.Build, error) {
	var u core.Unit
	if err := json.Unmarshal(s.Snapshot, &u); err != nil {
		return storage.Build{}, fmt.Errorf("decoding unit snapshot %s: %w", s.ID, err)
	}
	if u.Modifications == nil {
		u.Modifications = []core.AppliedModification{}
	}

	return storage.Build{
		ID:        s.ID,
		Name:      s.Name,
		ClassName: s.ClassName,
		Cost:      s.Cost,
		Unit:      u,
		SavedAt:   s.SavedAt,
	}, nil
}
