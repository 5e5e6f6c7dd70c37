package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backup-admin/internal/domain/job"
	apperrors "backup-admin/pkg/errors"
)

const (
	jobColumns = "id, user_email, type, status, started_at"

	entityBackupJob  = "backup_jobs"
	entityRestoreJob = "restore_jobs"
	errJobNotFound   = "job not found"
)

func scanBackupJob(row pgx.Row) (*job.BackupJob, error) {
	j := &job.BackupJob{}
	err := row.Scan(&j.ID, &j.UserEmail, &j.Type, &j.Status, &j.StartedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func scanRestoreJob(row pgx.Row) (*job.RestoreJob, error) {
	j := &job.RestoreJob{}
	err := row.Scan(&j.ID, &j.UserEmail, &j.Type, &j.Status, &j.StartedAt)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (s *Store) ListRunningBackups(ctx context.Context) ([]job.BackupJob, error) {
	query := `SELECT ` + jobColumns + ` FROM backup_jobs WHERE status = $1 ORDER BY started_at`

	rows, err := s.db.Pool.Query(ctx, query, job.StatusRunning)
	if err != nil {
		return nil, errQueryFailed(entityBackupJob, err)
	}
	defer rows.Close()

	jobs := make([]job.BackupJob, 0)
	for rows.Next() {
		j, err := scanBackupJob(rows)
		if err != nil {
			return nil, errQueryFailed(entityBackupJob, err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (s *Store) CreateBackupJob(ctx context.Context, in job.CreateJobInput) (*job.BackupJob, error) {
	query := `
		INSERT INTO backup_jobs (user_email, type, status)
		VALUES ($1, $2, $3)
		RETURNING ` + jobColumns

	j, err := scanBackupJob(s.db.Pool.QueryRow(ctx, query, in.UserEmail, in.Type, in.Status))
	if err != nil {
		return nil, errInsertFailed(entityBackupJob, err)
	}
	return j, nil
}

// UpdateBackupJobStatus moves a running job to a terminal state. The guard on
// the current status is part of the UPDATE so the transition check and the
// write are one atomic statement.
func (s *Store) UpdateBackupJobStatus(ctx context.Context, id string, status job.Status) (*job.BackupJob, error) {
	query := `
		UPDATE backup_jobs SET status = $2
		WHERE id = $1 AND status = $3
		RETURNING ` + jobColumns

	j, err := scanBackupJob(s.db.Pool.QueryRow(ctx, query, id, status, job.StatusRunning))
	if err == nil {
		return j, nil
	}
	if err != pgx.ErrNoRows {
		return nil, errUpdateFailed(entityBackupJob, err)
	}

	// Nothing matched: either the job does not exist or the move is illegal.
	current, err := scanBackupJob(s.db.Pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM backup_jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errJobNotFound)
		}
		return nil, errQueryFailed(entityBackupJob, err)
	}
	return nil, current.Status.TransitionError(status)
}

func (s *Store) ListRunningRestores(ctx context.Context) ([]job.RestoreJob, error) {
	query := `SELECT ` + jobColumns + ` FROM restore_jobs WHERE status = $1 ORDER BY started_at`

	rows, err := s.db.Pool.Query(ctx, query, job.StatusRunning)
	if err != nil {
		return nil, errQueryFailed(entityRestoreJob, err)
	}
	defer rows.Close()

	jobs := make([]job.RestoreJob, 0)
	for rows.Next() {
		j, err := scanRestoreJob(rows)
		if err != nil {
			return nil, errQueryFailed(entityRestoreJob, err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}

func (s *Store) CreateRestoreJob(ctx context.Context, in job.CreateJobInput) (*job.RestoreJob, error) {
	query := `
		INSERT INTO restore_jobs (user_email, type, status)
		VALUES ($1, $2, $3)
		RETURNING ` + jobColumns

	j, err := scanRestoreJob(s.db.Pool.QueryRow(ctx, query, in.UserEmail, in.Type, in.Status))
	if err != nil {
		return nil, errInsertFailed(entityRestoreJob, err)
	}
	return j, nil
}

func (s *Store) UpdateRestoreJobStatus(ctx context.Context, id string, status job.Status) (*job.RestoreJob, error) {
	query := `
		UPDATE restore_jobs SET status = $2
		WHERE id = $1 AND status = $3
		RETURNING ` + jobColumns

	j, err := scanRestoreJob(s.db.Pool.QueryRow(ctx, query, id, status, job.StatusRunning))
	if err == nil {
		return j, nil
	}
	if err != pgx.ErrNoRows {
		return nil, errUpdateFailed(entityRestoreJob, err)
	}

	current, err := scanRestoreJob(s.db.Pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM restore_jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errJobNotFound)
		}
		return nil, errQueryFailed(entityRestoreJob, err)
	}
	return nil, current.Status.TransitionError(status)
}
