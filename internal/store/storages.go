package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/socialix/internal/config"
	"github.com/MKhiriev/socialix/internal/logger"
)

// Storages groups every storage backend used by the services.
type Storages struct {
	UserRepository UserRepository
	MediaStorage   MediaStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and configures the
// media store.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	media, err := NewS3MediaStorage(ctx, cfg.Media, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		MediaStorage:   media,
		db:             db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
