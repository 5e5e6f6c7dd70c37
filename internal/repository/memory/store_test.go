package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backup-admin/internal/domain/appuser"
	"backup-admin/internal/domain/asset"
	"backup-admin/internal/domain/job"
	"backup-admin/internal/domain/metrics"
	"backup-admin/internal/domain/policy"
	apperrors "backup-admin/pkg/errors"
)

func assetInput(email string, t asset.Type) asset.CreateAssetInput {
	return asset.CreateAssetInput{
		Name:      email,
		Type:      t,
		UserName:  "Test User",
		UserEmail: email,
		Status:    asset.StatusActive,
	}
}

func TestCreateAsset_AssignsServerOwnedFields(t *testing.T) {
	store := New()
	ctx := context.Background()
	before := time.Now().UTC()

	in := assetInput("alice@example.com", asset.TypeGmail)
	created, err := store.CreateAsset(ctx, in)
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.ConfiguredOn.Before(before))
	assert.Equal(t, in.Name, created.Name)
	assert.Equal(t, in.Type, created.Type)
	assert.Equal(t, in.UserName, created.UserName)
	assert.Equal(t, in.UserEmail, created.UserEmail)
	assert.Equal(t, in.Status, created.Status)
}

func TestCreateAsset_IDsAreUnique(t *testing.T) {
	store := New()
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		created, err := store.CreateAsset(ctx, assetInput("bob@example.com", asset.TypeDrive))
		require.NoError(t, err)
		assert.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestListAssetsByType_FiltersByType(t *testing.T) {
	store := New()
	ctx := context.Background()

	gmail, err := store.CreateAsset(ctx, assetInput("gmail@example.com", asset.TypeGmail))
	require.NoError(t, err)
	_, err = store.CreateAsset(ctx, assetInput("drive@example.com", asset.TypeDrive))
	require.NoError(t, err)

	gmailAssets, err := store.ListAssetsByType(ctx, "gmail")
	require.NoError(t, err)
	require.Len(t, gmailAssets, 1)
	assert.Equal(t, gmail.ID, gmailAssets[0].ID)

	driveAssets, err := store.ListAssetsByType(ctx, "drive")
	require.NoError(t, err)
	require.Len(t, driveAssets, 1)
	assert.NotEqual(t, gmail.ID, driveAssets[0].ID)
}

func TestListAssets_RepeatedReadsAreIdentical(t *testing.T) {
	store := New()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.CreateAsset(ctx, assetInput("carol@example.com", asset.TypeGmail))
		require.NoError(t, err)
	}

	first, err := store.ListAssets(ctx)
	require.NoError(t, err)
	second, err := store.ListAssets(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGetAsset_AbsentIDReturnsNotFound(t *testing.T) {
	store := New()

	_, err := store.GetAsset(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreatePolicy_AppliesBoolDefaults(t *testing.T) {
	store := New()

	created, err := store.CreatePolicy(context.Background(), policy.CreatePolicyInput{
		Name: "Weekly Gmail",
		Type: asset.TypeGmail,
	})
	require.NoError(t, err)

	assert.True(t, created.AutoBackup)
	assert.True(t, created.BackupAllEmails)
	assert.Zero(t, created.UsersMapped)
}

func TestListRunningBackups_ExcludesTerminalJobs(t *testing.T) {
	store := New()
	ctx := context.Background()

	running, err := store.CreateBackupJob(ctx, job.CreateJobInput{
		UserEmail: "dave@example.com",
		Type:      asset.TypeGmail,
		Status:    job.StatusRunning,
	})
	require.NoError(t, err)
	_, err = store.CreateBackupJob(ctx, job.CreateJobInput{
		UserEmail: "erin@example.com",
		Type:      asset.TypeDrive,
		Status:    job.StatusCompleted,
	})
	require.NoError(t, err)

	jobs, err := store.ListRunningBackups(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, running.ID, jobs[0].ID)
}

func TestUpdateBackupJobStatus_Transitions(t *testing.T) {
	store := New()
	ctx := context.Background()

	created, err := store.CreateBackupJob(ctx, job.CreateJobInput{
		UserEmail: "frank@example.com",
		Type:      asset.TypeGmail,
		Status:    job.StatusRunning,
	})
	require.NoError(t, err)

	updated, err := store.UpdateBackupJobStatus(ctx, created.ID, job.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, updated.Status)

	// Terminal states are immutable.
	_, err = store.UpdateBackupJobStatus(ctx, created.ID, job.StatusRunning)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	_, err = store.UpdateBackupJobStatus(ctx, created.ID, job.StatusFailed)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = store.UpdateBackupJobStatus(ctx, "no-such-id", job.StatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateBackupJobStatus_ConcurrentTransitionsAcceptOne(t *testing.T) {
	store := New()
	ctx := context.Background()

	const jobs = 200
	ids := make([]string, 0, jobs)
	for i := 0; i < jobs; i++ {
		created, err := store.CreateBackupJob(ctx, job.CreateJobInput{
			UserEmail: "grace@example.com",
			Type:      asset.TypeDrive,
			Status:    job.StatusRunning,
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	// Race a completed and a failed transition against every job. Exactly one
	// side may win per job; the loser must see the terminal-state rejection.
	var wg sync.WaitGroup
	var completed, failed atomic.Int64
	for _, id := range ids {
		for _, status := range []job.Status{job.StatusCompleted, job.StatusFailed} {
			wg.Add(1)
			go func(id string, status job.Status) {
				defer wg.Done()
				if _, err := store.UpdateBackupJobStatus(ctx, id, status); err == nil {
					if status == job.StatusCompleted {
						completed.Add(1)
					} else {
						failed.Add(1)
					}
				}
			}(id, status)
		}
	}
	wg.Wait()

	assert.Equal(t, int64(jobs), completed.Load()+failed.Load())

	running, err := store.ListRunningBackups(ctx)
	require.NoError(t, err)
	assert.Empty(t, running)
}

func TestCreateAppUser_EnforcesUniqueness(t *testing.T) {
	store := New()
	ctx := context.Background()

	_, err := store.CreateAppUser(ctx, appuser.CreateAppUserInput{
		UserID:       "USR-100",
		DisplayName:  "Grace Hopper",
		EmailAddress: "grace@example.com",
		Status:       appuser.StatusActive,
	})
	require.NoError(t, err)

	_, err = store.CreateAppUser(ctx, appuser.CreateAppUserInput{
		UserID:       "USR-100",
		DisplayName:  "Grace Clone",
		EmailAddress: "other@example.com",
		Status:       appuser.StatusActive,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = store.CreateAppUser(ctx, appuser.CreateAppUserInput{
		UserID:       "USR-101",
		DisplayName:  "Grace Clone",
		EmailAddress: "GRACE@example.com",
		Status:       appuser.StatusActive,
	})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateDashboardMetrics_PartialPatch(t *testing.T) {
	store := New()
	ctx := context.Background()

	initial, err := store.GetDashboardMetrics(ctx)
	require.NoError(t, err)

	before := time.Now().UTC()
	activeUsers := 5000
	updated, err := store.UpdateDashboardMetrics(ctx, metrics.UpdateMetricsInput{
		ActiveUsers: &activeUsers,
	})
	require.NoError(t, err)

	assert.Equal(t, 5000, updated.ActiveUsers)
	assert.Equal(t, initial.ID, updated.ID)
	assert.Equal(t, initial.ActiveAssets, updated.ActiveAssets)
	assert.Equal(t, initial.TotalDataBackedUp, updated.TotalDataBackedUp)
	assert.False(t, updated.UpdatedAt.Before(before))
}

func TestSeed_LoadsDemoFixtures(t *testing.T) {
	store := New()
	store.Seed()
	ctx := context.Background()

	assets, err := store.ListAssets(ctx)
	require.NoError(t, err)
	assert.Len(t, assets, 3)

	backups, err := store.ListRunningBackups(ctx)
	require.NoError(t, err)
	assert.Len(t, backups, 2)

	restores, err := store.ListRunningRestores(ctx)
	require.NoError(t, err)
	assert.Len(t, restores, 1)

	m, err := store.GetDashboardMetrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1247, m.ActiveUsers)
	assert.Equal(t, "247.8 TB", m.TotalDataBackedUp)
}
