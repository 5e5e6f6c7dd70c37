package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backup-admin/internal/domain/policy"
	apperrors "backup-admin/pkg/errors"
)

const (
	policyColumns = "id, name, description, type, users_mapped, auto_backup, backup_all_emails, created_at"

	entityPolicy      = "policies"
	errPolicyNotFound = "policy not found"
)

func scanPolicy(row pgx.Row) (*policy.Policy, error) {
	p := &policy.Policy{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.UsersMapped, &p.AutoBackup, &p.BackupAllEmails, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) ListPolicies(ctx context.Context) ([]policy.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies ORDER BY created_at`

	rows, err := s.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errQueryFailed(entityPolicy, err)
	}
	defer rows.Close()

	policies := make([]policy.Policy, 0)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, errQueryFailed(entityPolicy, err)
		}
		policies = append(policies, *p)
	}
	return policies, rows.Err()
}

func (s *Store) ListPoliciesByType(ctx context.Context, policyType string) ([]policy.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE type = $1 ORDER BY created_at`

	rows, err := s.db.Pool.Query(ctx, query, policyType)
	if err != nil {
		return nil, errQueryFailed(entityPolicy, err)
	}
	defer rows.Close()

	policies := make([]policy.Policy, 0)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, errQueryFailed(entityPolicy, err)
		}
		policies = append(policies, *p)
	}
	return policies, rows.Err()
}

func (s *Store) GetPolicy(ctx context.Context, id string) (*policy.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM policies WHERE id = $1`

	p, err := scanPolicy(s.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errPolicyNotFound)
		}
		return nil, errQueryFailed(entityPolicy, err)
	}
	return p, nil
}

func (s *Store) CreatePolicy(ctx context.Context, in policy.CreatePolicyInput) (*policy.Policy, error) {
	query := `
		INSERT INTO policies (name, description, type, users_mapped, auto_backup, backup_all_emails)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + policyColumns

	p, err := scanPolicy(s.db.Pool.QueryRow(ctx, query,
		in.Name, in.Description, in.Type, in.UsersMapped, in.AutoBackupValue(), in.BackupAllEmailsValue()))
	if err != nil {
		return nil, errInsertFailed(entityPolicy, err)
	}
	return p, nil
}
