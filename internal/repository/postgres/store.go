package postgres

import "backup-admin/internal/repository"

// Store implements the full storage contract on a pgx pool.
type Store struct {
	db *DB
}

var _ repository.Store = (*Store)(nil)

func NewStore(db *DB) *Store {
	return &Store{db: db}
}
