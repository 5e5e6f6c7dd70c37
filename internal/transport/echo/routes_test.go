package echo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backup-admin/internal/config"
	"backup-admin/internal/domain/asset"
	"backup-admin/internal/domain/download"
	"backup-admin/internal/domain/job"
	"backup-admin/internal/domain/metrics"
	"backup-admin/internal/domain/policy"
	"backup-admin/internal/infra/cache"
	"backup-admin/internal/repository/memory"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Store:  config.StoreConfig{Driver: config.StoreDriverMemory},
	}
	return NewServer(cfg, memory.New(), nil, cache.NewURLCache())
}

func doJSON(s *Server, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echoHeaderContentType, contentTypeJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func TestHealth(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestGetDashboardMetrics(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodGet, "/api/dashboard/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var m metrics.DashboardMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "0 TB", m.TotalDataBackedUp)
}

func TestUpdateDashboardMetrics_PartialPatch(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPut, "/api/dashboard/metrics", `{"activeUsers": 5000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var m metrics.DashboardMetrics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, 5000, m.ActiveUsers)
	assert.Equal(t, "0 TB", m.TotalDataBackedUp)
	assert.False(t, m.UpdatedAt.IsZero())
}

func TestUpdateDashboardMetrics_RejectsNegativeCount(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPut, "/api/dashboard/metrics", `{"activeUsers": -1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "activeUsers")
}

func TestCreateAsset(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/assets",
		`{"name":"john.doe@company.com","type":"gmail","userName":"John Doe","userEmail":"john.doe@company.com","status":"active"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created asset.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.ConfiguredOn.IsZero())
	assert.Equal(t, asset.TypeGmail, created.Type)

	rec = doJSON(s, http.MethodGet, "/api/assets/"+created.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAsset_MissingFieldLeavesStoreUnchanged(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/assets",
		`{"name":"john.doe@company.com","type":"gmail","userName":"John Doe","status":"active"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var failure FailureResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Equal(t, msgInvalidAssetData, failure.Message)
	assert.Contains(t, failure.Error, "userEmail")

	rec = doJSON(s, http.MethodGet, "/api/assets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestCreateAsset_EnumOutsideDomain(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/assets",
		`{"name":"a@b.com","type":"gmail","userName":"A B","userEmail":"a@b.com","status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "status")
}

func TestCreateAsset_RejectsServerOwnedFields(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/assets",
		`{"id":"forged","name":"a@b.com","type":"gmail","userName":"A B","userEmail":"a@b.com","status":"active"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAssets_TypeFilter(t *testing.T) {
	s := newTestServer()

	doJSON(s, http.MethodPost, "/api/assets",
		`{"name":"g@b.com","type":"gmail","userName":"G","userEmail":"g@b.com","status":"active"}`)
	doJSON(s, http.MethodPost, "/api/assets",
		`{"name":"d@b.com","type":"drive","userName":"D","userEmail":"d@b.com","status":"active"}`)

	rec := doJSON(s, http.MethodGet, "/api/assets?type=gmail", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var assets []asset.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assets))
	require.Len(t, assets, 1)
	assert.Equal(t, asset.TypeGmail, assets[0].Type)
}

func TestGetAsset_NotFound(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodGet, "/api/assets/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "message")
}

func TestPolicyEndToEnd(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/policies",
		`{"name":"Weekly Gmail","description":"","type":"gmail","usersMapped":0,"autoBackup":true,"backupAllEmails":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created policy.Policy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	rec = doJSON(s, http.MethodGet, "/api/policies?type=gmail", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var gmailPolicies []policy.Policy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gmailPolicies))
	require.Len(t, gmailPolicies, 1)
	assert.Equal(t, created.ID, gmailPolicies[0].ID)

	rec = doJSON(s, http.MethodGet, "/api/policies?type=drive", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var drivePolicies []policy.Policy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drivePolicies))
	assert.Empty(t, drivePolicies)
}

func TestCreateUser_DuplicateConflicts(t *testing.T) {
	s := newTestServer()

	body := `{"userId":"USR-001","displayName":"John Doe","emailAddress":"john.doe@company.com","status":"active"}`
	rec := doJSON(s, http.MethodPost, "/api/users", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(s, http.MethodPost, "/api/users", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBackupJobLifecycle(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/dashboard/backup-jobs",
		`{"userEmail":"john.doe@company.com","type":"gmail","status":"running"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created job.BackupJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(s, http.MethodGet, "/api/dashboard/running-backups", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var running []job.BackupJob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &running))
	require.Len(t, running, 1)

	rec = doJSON(s, http.MethodPatch, "/api/dashboard/backup-jobs/"+created.ID+"/status",
		`{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(s, http.MethodGet, "/api/dashboard/running-backups", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &running))
	assert.Empty(t, running)

	// Terminal jobs cannot move again.
	rec = doJSON(s, http.MethodPatch, "/api/dashboard/backup-jobs/"+created.ID+"/status",
		`{"status":"running"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(s, http.MethodPatch, "/api/dashboard/backup-jobs/no-such-id/status",
		`{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRestoreJob_InvalidStatus(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodPost, "/api/dashboard/restore-jobs",
		`{"userEmail":"a@b.com","type":"gmail","status":"queued"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListDownloads_WithoutPresigner(t *testing.T) {
	s := newTestServer()

	rec := doJSON(s, http.MethodGet, "/api/downloads", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var artifacts []download.Artifact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &artifacts))
	require.NotEmpty(t, artifacts)
	for _, a := range artifacts {
		assert.Empty(t, a.DownloadURL)
		assert.NotEmpty(t, a.ObjectKey)
	}
}

// brokenStore fails asset reads the way a lost database connection would.
type brokenStore struct {
	*memory.Store
}

func (brokenStore) ListAssets(ctx context.Context) ([]asset.Asset, error) {
	return nil, errors.New("dial tcp 127.0.0.1:5432: connection refused")
}

func TestListAssets_StoreFailureMasksCause(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Store:  config.StoreConfig{Driver: config.StoreDriverMemory},
	}
	s := NewServer(cfg, brokenStore{memory.New()}, nil, cache.NewURLCache())

	rec := doJSON(s, http.MethodGet, "/api/assets", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to fetch assets", resp.Message)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestCreateAsset_RequiresJSONContentType(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/assets",
		strings.NewReader(`{"name":"a@b.com"}`))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
