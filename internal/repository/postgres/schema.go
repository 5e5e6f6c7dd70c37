package postgres

import "context"

// schemaStatements bootstraps the console's tables. The dashboard_metrics
// singleton row is inserted here so reads never see an empty table.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS assets (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		user_name TEXT NOT NULL,
		user_email TEXT NOT NULL,
		status TEXT NOT NULL,
		configured_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS policies (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL,
		users_mapped INTEGER NOT NULL DEFAULT 0,
		auto_backup BOOLEAN NOT NULL DEFAULT true,
		backup_all_emails BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS backup_jobs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_email TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS restore_jobs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_email TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS app_users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL,
		email_address TEXT NOT NULL UNIQUE,
		status TEXT NOT NULL,
		last_modified TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS dashboard_metrics (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		active_users INTEGER NOT NULL DEFAULT 0,
		active_assets INTEGER NOT NULL DEFAULT 0,
		full_backups_completed INTEGER NOT NULL DEFAULT 0,
		assets_not_protected INTEGER NOT NULL DEFAULT 0,
		total_data_backed_up TEXT NOT NULL DEFAULT '0 TB',
		currently_running_backups INTEGER NOT NULL DEFAULT 0,
		completed_restores INTEGER NOT NULL DEFAULT 0,
		users_without_active_assets INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`INSERT INTO dashboard_metrics (id)
		SELECT gen_random_uuid()
		WHERE NOT EXISTS (SELECT 1 FROM dashboard_metrics)`,
}

// EnsureSchema creates missing tables and the metrics singleton row.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return errFailedEnsureSchema(err)
		}
	}
	return nil
}
