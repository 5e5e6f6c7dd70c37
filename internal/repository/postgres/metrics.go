package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"backup-admin/internal/domain/metrics"
)

const (
	metricsColumns = `id, active_users, active_assets, full_backups_completed,
		assets_not_protected, total_data_backed_up, currently_running_backups,
		completed_restores, users_without_active_assets, updated_at`

	entityMetrics = "dashboard_metrics"
)

func scanMetrics(row pgx.Row) (*metrics.DashboardMetrics, error) {
	m := &metrics.DashboardMetrics{}
	err := row.Scan(
		&m.ID,
		&m.ActiveUsers,
		&m.ActiveAssets,
		&m.FullBackupsCompleted,
		&m.AssetsNotProtected,
		&m.TotalDataBackedUp,
		&m.CurrentlyRunningBackups,
		&m.CompletedRestores,
		&m.UsersWithoutActiveAssets,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) GetDashboardMetrics(ctx context.Context) (*metrics.DashboardMetrics, error) {
	// The schema bootstrap guarantees the singleton row exists.
	query := `SELECT ` + metricsColumns + ` FROM dashboard_metrics LIMIT 1`

	m, err := scanMetrics(s.db.Pool.QueryRow(ctx, query))
	if err != nil {
		return nil, errQueryFailed(entityMetrics, err)
	}
	return m, nil
}

func (s *Store) UpdateDashboardMetrics(ctx context.Context, in metrics.UpdateMetricsInput) (*metrics.DashboardMetrics, error) {
	// COALESCE keeps the current value for every absent patch field; the
	// merge and the restamp happen in one statement.
	query := `
		UPDATE dashboard_metrics SET
			active_users = COALESCE($1, active_users),
			active_assets = COALESCE($2, active_assets),
			full_backups_completed = COALESCE($3, full_backups_completed),
			assets_not_protected = COALESCE($4, assets_not_protected),
			total_data_backed_up = COALESCE($5, total_data_backed_up),
			currently_running_backups = COALESCE($6, currently_running_backups),
			completed_restores = COALESCE($7, completed_restores),
			users_without_active_assets = COALESCE($8, users_without_active_assets),
			updated_at = now()
		RETURNING ` + metricsColumns

	m, err := scanMetrics(s.db.Pool.QueryRow(ctx, query,
		in.ActiveUsers,
		in.ActiveAssets,
		in.FullBackupsCompleted,
		in.AssetsNotProtected,
		in.TotalDataBackedUp,
		in.CurrentlyRunningBackups,
		in.CompletedRestores,
		in.UsersWithoutActiveAssets,
	))
	if err != nil {
		return nil, errUpdateFailed(entityMetrics, err)
	}
	return m, nil
}
