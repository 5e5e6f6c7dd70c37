package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func errFailedParseDatabaseConfig(err error) error {
	return fmt.Errorf("failed to parse database config: %w", err)
}

func errFailedCreateConnectionPool(err error) error {
	return fmt.Errorf("failed to create connection pool: %w", err)
}

func errFailedPingDatabase(err error) error {
	return fmt.Errorf("failed to ping database: %w", err)
}

func errFailedEnsureSchema(err error) error {
	return fmt.Errorf("failed to ensure schema: %w", err)
}

func errQueryFailed(entity string, err error) error {
	return fmt.Errorf("failed to query %s: %w", entity, err)
}

func errInsertFailed(entity string, err error) error {
	return fmt.Errorf("failed to insert %s: %w", entity, err)
}

func errUpdateFailed(entity string, err error) error {
	return fmt.Errorf("failed to update %s: %w", entity, err)
}
