package core

import (
	"fmt"
	"os"

	"todocore/internal/infra/persistence/memory"
	"todocore/internal/infra/persistence/postgres"
	"todocore/internal/infra/persistence/sqlite"
	"todocore/pkg/domain"
)

// StorageDriver identifies a concrete store implementation.
type StorageDriver string

const (
	StorageMemory   StorageDriver = "memory"   // in-memory only (tests / ephemeral)
	StorageSQLite   StorageDriver = "sqlite"   // embedded sqlite file
	StoragePostgres StorageDriver = "postgres" // PostgreSQL server
)

// OpenStore selects a backend using environment variables.
// Defaults to sqlite when unset.
//
//	TODOCORE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	TODOCORE_SQLITE_PATH: path to sqlite file (default ./todocore.db)
//	TODOCORE_POSTGRES_DSN: postgres DSN when driver=postgres
func OpenStore() (domain.Store, error) {
	driver := os.Getenv("TODOCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = string(StorageSQLite)
	}
	switch StorageDriver(driver) {
	case StorageMemory:
		return memory.NewStore(), nil
	case StorageSQLite:
		path := os.Getenv("TODOCORE_SQLITE_PATH")
		return sqlite.NewStore(path)
	case StoragePostgres:
		dsn := os.Getenv("TODOCORE_POSTGRES_DSN")
		return postgres.NewStore(dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
