package memory

import (
	"time"

	"github.com/google/uuid"

	"backup-admin/internal/domain/appuser"
	"backup-admin/internal/domain/asset"
	"backup-admin/internal/domain/job"
	"backup-admin/internal/domain/metrics"
	"backup-admin/internal/domain/policy"
)

// Seed loads the demo fixtures the console ships with. Intended for local
// runs; tests start from an empty store instead.
func (s *Store) Seed() {
	now := time.Now().UTC()

	s.metricsMu.Lock()
	s.metrics = metrics.DashboardMetrics{
		ID:                       uuid.NewString(),
		ActiveUsers:              1247,
		ActiveAssets:             3842,
		FullBackupsCompleted:     2194,
		AssetsNotProtected:       47,
		TotalDataBackedUp:        "247.8 TB",
		CurrentlyRunningBackups:  23,
		CompletedRestores:        156,
		UsersWithoutActiveAssets: 12,
		UpdatedAt:                now,
	}
	s.metricsMu.Unlock()

	assets := []asset.Asset{
		{
			ID:           uuid.NewString(),
			Name:         "john.doe@company.com",
			Type:         asset.TypeGmail,
			UserName:     "John Doe",
			UserEmail:    "john.doe@company.com",
			Status:       asset.StatusActive,
			ConfiguredOn: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.NewString(),
			Name:         "sarah.wilson@company.com",
			Type:         asset.TypeGmail,
			UserName:     "Sarah Wilson",
			UserEmail:    "sarah.wilson@company.com",
			Status:       asset.StatusPending,
			ConfiguredOn: time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           uuid.NewString(),
			Name:         "mike.chen@company.com",
			Type:         asset.TypeDrive,
			UserName:     "Mike Chen",
			UserEmail:    "mike.chen@company.com",
			Status:       asset.StatusActive,
			ConfiguredOn: time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, a := range assets {
		s.assets.put(a.ID, a)
	}

	policies := []policy.Policy{
		{
			ID:              uuid.NewString(),
			Name:            "Default Gmail Policy",
			Description:     "Standard backup policy for Gmail accounts",
			Type:            asset.TypeGmail,
			UsersMapped:     847,
			AutoBackup:      true,
			BackupAllEmails: true,
			CreatedAt:       now,
		},
		{
			ID:              uuid.NewString(),
			Name:            "Standard Drive Policy",
			Description:     "Standard backup policy for Google Drive accounts",
			Type:            asset.TypeDrive,
			UsersMapped:     623,
			AutoBackup:      true,
			BackupAllEmails: false,
			CreatedAt:       now,
		},
	}
	for _, p := range policies {
		s.policies.put(p.ID, p)
	}

	backups := []job.BackupJob{
		{
			ID:        uuid.NewString(),
			UserEmail: "john.doe@company.com",
			Type:      asset.TypeGmail,
			Status:    job.StatusRunning,
			StartedAt: now,
		},
		{
			ID:        uuid.NewString(),
			UserEmail: "sarah.wilson@company.com",
			Type:      asset.TypeDrive,
			Status:    job.StatusRunning,
			StartedAt: now,
		},
	}
	for _, b := range backups {
		s.backupJobs.put(b.ID, b)
	}

	restore := job.RestoreJob{
		ID:        uuid.NewString(),
		UserEmail: "mike.chen@company.com",
		Type:      asset.TypeGmail,
		Status:    job.StatusRunning,
		StartedAt: now,
	}
	s.restoreJobs.put(restore.ID, restore)

	users := []appuser.AppUser{
		{
			ID:           uuid.NewString(),
			UserID:       "USR-001",
			DisplayName:  "John Doe",
			EmailAddress: "john.doe@company.com",
			Status:       appuser.StatusActive,
			LastModified: time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           uuid.NewString(),
			UserID:       "USR-002",
			DisplayName:  "Sarah Wilson",
			EmailAddress: "sarah.wilson@company.com",
			Status:       appuser.StatusPending,
			LastModified: time.Date(2024, time.January, 14, 15, 45, 0, 0, time.UTC),
		},
	}
	for _, u := range users {
		s.appUsers.put(u.ID, u)
	}
}
