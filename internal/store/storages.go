package store

import "github.com/MKhiriev/go-phone-auth/internal/logger"

// Storages groups every repository the service layer depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}
}
