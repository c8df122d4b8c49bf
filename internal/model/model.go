package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&BuilderInfo{},
	&SavedUnit{},
}

////////////////////////
// SYSTEM MODELS
////////////////////////

// BuilderInfo records which schema and catalog a database was created with
type BuilderInfo struct {
	gorm.Model
	SchemaVersion int    `json:"schemaVersion"`
	CatalogSource string `json:"catalogSource" gorm:"size:255"`
}

func (*BuilderInfo) TableName() string {
	return "builder_infos"
}

////////////////////////
// BUILD MODELS
////////////////////////

// SavedUnit is one persisted build. Summary columns are denormalized from
// the snapshot so builds can be listed without decoding it.
type SavedUnit struct {
	ID            string         `json:"id" gorm:"primaryKey;size:36"`
	Name          string         `json:"name" gorm:"size:127"`
	ClassName     string         `json:"className" gorm:"size:127;index:idx_saved_unit_class"`
	Size          string         `json:"size" gorm:"size:16"`
	Cost          int            `json:"cost"`
	MaxCost       int            `json:"maxCost"`
	Modifications datatypes.JSON `json:"modifications"`
	Snapshot      datatypes.JSON `json:"snapshot"`
	SavedAt       time.Time      `json:"savedAt" gorm:"index:idx_saved_unit_saved_at"`
}

func (*SavedUnit) TableName() string {
	return "saved_units"
}
