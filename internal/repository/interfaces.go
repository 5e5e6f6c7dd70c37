package repository

import (
	"context"

	"backup-admin/internal/domain/appuser"
	"backup-admin/internal/domain/asset"
	"backup-admin/internal/domain/job"
	"backup-admin/internal/domain/metrics"
	"backup-admin/internal/domain/policy"
)

// Repository interfaces define the storage contract the transport layer is
// written against. The memory implementation is canonical; postgres satisfies
// the same contract so a real database can be swapped in without touching
// handlers.

type AssetRepository interface {
	ListAssets(ctx context.Context) ([]asset.Asset, error)
	ListAssetsByType(ctx context.Context, assetType string) ([]asset.Asset, error)
	GetAsset(ctx context.Context, id string) (*asset.Asset, error)
	CreateAsset(ctx context.Context, in asset.CreateAssetInput) (*asset.Asset, error)
}

type PolicyRepository interface {
	ListPolicies(ctx context.Context) ([]policy.Policy, error)
	ListPoliciesByType(ctx context.Context, policyType string) ([]policy.Policy, error)
	GetPolicy(ctx context.Context, id string) (*policy.Policy, error)
	CreatePolicy(ctx context.Context, in policy.CreatePolicyInput) (*policy.Policy, error)
}

type JobRepository interface {
	ListRunningBackups(ctx context.Context) ([]job.BackupJob, error)
	CreateBackupJob(ctx context.Context, in job.CreateJobInput) (*job.BackupJob, error)
	UpdateBackupJobStatus(ctx context.Context, id string, status job.Status) (*job.BackupJob, error)

	ListRunningRestores(ctx context.Context) ([]job.RestoreJob, error)
	CreateRestoreJob(ctx context.Context, in job.CreateJobInput) (*job.RestoreJob, error)
	UpdateRestoreJobStatus(ctx context.Context, id string, status job.Status) (*job.RestoreJob, error)
}

type AppUserRepository interface {
	ListAppUsers(ctx context.Context) ([]appuser.AppUser, error)
	GetAppUser(ctx context.Context, id string) (*appuser.AppUser, error)
	CreateAppUser(ctx context.Context, in appuser.CreateAppUserInput) (*appuser.AppUser, error)
}

type MetricsRepository interface {
	GetDashboardMetrics(ctx context.Context) (*metrics.DashboardMetrics, error)
	UpdateDashboardMetrics(ctx context.Context, in metrics.UpdateMetricsInput) (*metrics.DashboardMetrics, error)
}

// Store is the full storage surface consumed by the HTTP layer.
type Store interface {
	AssetRepository
	PolicyRepository
	JobRepository
	AppUserRepository
	MetricsRepository
}
