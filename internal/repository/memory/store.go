// Package memory is the in-process reference implementation of the storage
// contract. It guards each collection with its own lock and is the sole
// owner of id and timestamp generation. Nothing survives a restart.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"backup-admin/internal/domain/appuser"
	"backup-admin/internal/domain/asset"
	"backup-admin/internal/domain/job"
	"backup-admin/internal/domain/metrics"
	"backup-admin/internal/domain/policy"
	"backup-admin/internal/repository"
	apperrors "backup-admin/pkg/errors"
)

const (
	msgAssetNotFound  = "asset not found"
	msgPolicyNotFound = "policy not found"
	msgUserNotFound   = "user not found"
	msgJobNotFound    = "job not found"
	msgUserIDTaken    = "user id already in use"
	msgEmailTaken     = "email address already in use"
)

// Store holds every collection of the backup console. The dashboard metrics
// singleton lives outside the generic collections because there is exactly
// one row, updated in place.
type Store struct {
	assets      *collection[asset.Asset]
	policies    *collection[policy.Policy]
	backupJobs  *collection[job.BackupJob]
	restoreJobs *collection[job.RestoreJob]
	appUsers    *collection[appuser.AppUser]

	// Serializes the uniqueness scan and the insert in CreateAppUser.
	appUserCreateMu sync.Mutex

	metricsMu sync.RWMutex
	metrics   metrics.DashboardMetrics
}

var _ repository.Store = (*Store)(nil)

// New constructs an empty store. The metrics singleton starts zero-valued so
// the dashboard always has a row to read.
func New() *Store {
	return &Store{
		assets:      newCollection[asset.Asset](),
		policies:    newCollection[policy.Policy](),
		backupJobs:  newCollection[job.BackupJob](),
		restoreJobs: newCollection[job.RestoreJob](),
		appUsers:    newCollection[appuser.AppUser](),
		metrics: metrics.DashboardMetrics{
			ID:                uuid.NewString(),
			TotalDataBackedUp: "0 TB",
			UpdatedAt:         time.Now().UTC(),
		},
	}
}

// Assets

func (s *Store) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	return s.assets.list(), nil
}

func (s *Store) ListAssetsByType(ctx context.Context, assetType string) ([]asset.Asset, error) {
	return s.assets.filter(func(a asset.Asset) bool {
		return string(a.Type) == assetType
	}), nil
}

func (s *Store) GetAsset(ctx context.Context, id string) (*asset.Asset, error) {
	a, ok := s.assets.get(id)
	if !ok {
		return nil, apperrors.NotFound(msgAssetNotFound)
	}
	return &a, nil
}

func (s *Store) CreateAsset(ctx context.Context, in asset.CreateAssetInput) (*asset.Asset, error) {
	a := asset.Asset{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Type:         in.Type,
		UserName:     in.UserName,
		UserEmail:    in.UserEmail,
		Status:       in.Status,
		ConfiguredOn: time.Now().UTC(),
	}
	s.assets.put(a.ID, a)
	return &a, nil
}

// Policies

func (s *Store) ListPolicies(ctx context.Context) ([]policy.Policy, error) {
	return s.policies.list(), nil
}

func (s *Store) ListPoliciesByType(ctx context.Context, policyType string) ([]policy.Policy, error) {
	return s.policies.filter(func(p policy.Policy) bool {
		return string(p.Type) == policyType
	}), nil
}

func (s *Store) GetPolicy(ctx context.Context, id string) (*policy.Policy, error) {
	p, ok := s.policies.get(id)
	if !ok {
		return nil, apperrors.NotFound(msgPolicyNotFound)
	}
	return &p, nil
}

func (s *Store) CreatePolicy(ctx context.Context, in policy.CreatePolicyInput) (*policy.Policy, error) {
	p := policy.Policy{
		ID:              uuid.NewString(),
		Name:            in.Name,
		Description:     in.Description,
		Type:            in.Type,
		UsersMapped:     in.UsersMapped,
		AutoBackup:      in.AutoBackupValue(),
		BackupAllEmails: in.BackupAllEmailsValue(),
		CreatedAt:       time.Now().UTC(),
	}
	s.policies.put(p.ID, p)
	return &p, nil
}

// Backup jobs

func (s *Store) ListRunningBackups(ctx context.Context) ([]job.BackupJob, error) {
	return s.backupJobs.filter(func(j job.BackupJob) bool {
		return j.Status == job.StatusRunning
	}), nil
}

func (s *Store) CreateBackupJob(ctx context.Context, in job.CreateJobInput) (*job.BackupJob, error) {
	j := job.BackupJob{
		ID:        uuid.NewString(),
		UserEmail: in.UserEmail,
		Type:      in.Type,
		Status:    in.Status,
		StartedAt: time.Now().UTC(),
	}
	s.backupJobs.put(j.ID, j)
	return &j, nil
}

func (s *Store) UpdateBackupJobStatus(ctx context.Context, id string, status job.Status) (*job.BackupJob, error) {
	j, ok, err := s.backupJobs.update(id, func(j job.BackupJob) (job.BackupJob, error) {
		if !j.Status.CanTransitionTo(status) {
			return j, j.Status.TransitionError(status)
		}
		j.Status = status
		return j, nil
	})
	if !ok {
		return nil, apperrors.NotFound(msgJobNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Restore jobs

func (s *Store) ListRunningRestores(ctx context.Context) ([]job.RestoreJob, error) {
	return s.restoreJobs.filter(func(j job.RestoreJob) bool {
		return j.Status == job.StatusRunning
	}), nil
}

func (s *Store) CreateRestoreJob(ctx context.Context, in job.CreateJobInput) (*job.RestoreJob, error) {
	j := job.RestoreJob{
		ID:        uuid.NewString(),
		UserEmail: in.UserEmail,
		Type:      in.Type,
		Status:    in.Status,
		StartedAt: time.Now().UTC(),
	}
	s.restoreJobs.put(j.ID, j)
	return &j, nil
}

func (s *Store) UpdateRestoreJobStatus(ctx context.Context, id string, status job.Status) (*job.RestoreJob, error) {
	j, ok, err := s.restoreJobs.update(id, func(j job.RestoreJob) (job.RestoreJob, error) {
		if !j.Status.CanTransitionTo(status) {
			return j, j.Status.TransitionError(status)
		}
		j.Status = status
		return j, nil
	})
	if !ok {
		return nil, apperrors.NotFound(msgJobNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// App users

func (s *Store) ListAppUsers(ctx context.Context) ([]appuser.AppUser, error) {
	return s.appUsers.list(), nil
}

func (s *Store) GetAppUser(ctx context.Context, id string) (*appuser.AppUser, error) {
	u, ok := s.appUsers.get(id)
	if !ok {
		return nil, apperrors.NotFound(msgUserNotFound)
	}
	return &u, nil
}

func (s *Store) CreateAppUser(ctx context.Context, in appuser.CreateAppUserInput) (*appuser.AppUser, error) {
	s.appUserCreateMu.Lock()
	defer s.appUserCreateMu.Unlock()

	taken := s.appUsers.filter(func(u appuser.AppUser) bool {
		return u.UserID == in.UserID || strings.EqualFold(u.EmailAddress, in.EmailAddress)
	})
	for _, u := range taken {
		if u.UserID == in.UserID {
			return nil, apperrors.Conflict(msgUserIDTaken)
		}
		return nil, apperrors.Conflict(msgEmailTaken)
	}

	u := appuser.AppUser{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		DisplayName:  in.DisplayName,
		EmailAddress: in.EmailAddress,
		Status:       in.Status,
		LastModified: time.Now().UTC(),
	}
	s.appUsers.put(u.ID, u)
	return &u, nil
}

// Dashboard metrics

func (s *Store) GetDashboardMetrics(ctx context.Context) (*metrics.DashboardMetrics, error) {
	s.metricsMu.RLock()
	defer s.metricsMu.RUnlock()

	m := s.metrics
	return &m, nil
}

func (s *Store) UpdateDashboardMetrics(ctx context.Context, in metrics.UpdateMetricsInput) (*metrics.DashboardMetrics, error) {
	s.metricsMu.Lock()
	defer s.metricsMu.Unlock()

	s.metrics = in.Apply(s.metrics)
	s.metrics.UpdatedAt = time.Now().UTC()
	m := s.metrics
	return &m, nil
}
