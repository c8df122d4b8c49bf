package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/armourforge/vehicle-builder/internal/config"
	"github.com/armourforge/vehicle-builder/internal/storage"
	"github.com/armourforge/vehicle-builder/internal/storage/memory"
	sqlitestorage "github.com/armourforge/vehicle-builder/internal/storage/sqlite"
)

func createStorageBackend(storageCfg config.StorageConfig, log zerolog.Logger, catalogSource string) (storage.Backend, error) {
	switch storageCfg.Type {
	case "memory":
		log.Debug().Str("outputFile", storageCfg.Memory.OutputFile).Msg("Memory storage backend selected")
		return memory.New(storageCfg.Memory), nil

	case "sqlite":
		log.Debug().Str("path", storageCfg.SQLite.Path).Msg("SQLite storage backend selected")
		return sqlitestorage.New(sqlitestorage.Config{
			Path:          storageCfg.SQLite.Path,
			CatalogSource: catalogSource,
		}, log.With().Str("component", "database").Logger()), nil

	default:
		return nil, fmt.Errorf("unknown storage type: %s", storageCfg.Type)
	}
}
