package store

import (
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

// Storages bundles every repository backed by the relational database.
// It exists only when a database URL is configured; the rest of the
// application treats a nil *Storages as "persistence feature disabled".
type Storages struct {
	Users UserRepository
}

// NewStorages constructs all repositories over the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Users: NewUserRepository(db, logger),
	}
}
