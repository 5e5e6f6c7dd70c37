package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backup-admin/internal/domain/appuser"
	apperrors "backup-admin/pkg/errors"
)

const (
	appUserColumns = "id, user_id, display_name, email_address, status, last_modified"

	entityAppUser      = "app_users"
	errAppUserNotFound = "user not found"
	errAppUserConflict = "user id or email address already in use"
)

func scanAppUser(row pgx.Row) (*appuser.AppUser, error) {
	u := &appuser.AppUser{}
	err := row.Scan(&u.ID, &u.UserID, &u.DisplayName, &u.EmailAddress, &u.Status, &u.LastModified)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) ListAppUsers(ctx context.Context) ([]appuser.AppUser, error) {
	query := `SELECT ` + appUserColumns + ` FROM app_users ORDER BY last_modified`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed(entityAppUser, err)
	}
	defer rows.Close()

	users := make([]appuser.AppUser, 0)
	for rows.Next() {
		u, err := scanAppUser(rows)
		if err != nil {
			return nil, errQueryFailed(entityAppUser, err)
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (s *Store) GetAppUser(ctx context.Context, id string) (*appuser.AppUser, error) {
	query := `SELECT ` + appUserColumns + ` FROM app_users WHERE id = $1`

	u, err := scanAppUser(s.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errAppUserNotFound)
		}
		return nil, errQueryFailed(entityAppUser, err)
	}
	return u, nil
}

func (s *Store) CreateAppUser(ctx context.Context, in appuser.CreateAppUserInput) (*appuser.AppUser, error) {
	query := `
		INSERT INTO app_users (user_id, display_name, email_address, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + appUserColumns

	u, err := scanAppUser(s.db.Pool.QueryRow(ctx, query, in.UserID, in.DisplayName, in.EmailAddress, in.Status))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errAppUserConflict)
		}
		return nil, errInsertFailed(entityAppUser, err)
	}
	return u, nil
}
