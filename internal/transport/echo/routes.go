package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backup-admin/internal/domain/appuser"
	"backup-admin/internal/domain/asset"
	"backup-admin/internal/domain/download"
	"backup-admin/internal/domain/job"
	"backup-admin/internal/domain/metrics"
	"backup-admin/internal/domain/policy"
	apperrors "backup-admin/pkg/errors"
)

// registerRoutes registers all HTTP routes
func (s *Server) registerRoutes() {
	s.echo.GET("/api/health", s.healthHandler)

	s.echo.GET("/api/dashboard/metrics", s.getDashboardMetricsHandler)
	s.echo.PUT("/api/dashboard/metrics", s.updateDashboardMetricsHandler)
	s.echo.GET("/api/dashboard/running-backups", s.listRunningBackupsHandler)
	s.echo.GET("/api/dashboard/running-restores", s.listRunningRestoresHandler)
	s.echo.POST("/api/dashboard/backup-jobs", s.createBackupJobHandler)
	s.echo.PATCH("/api/dashboard/backup-jobs/:id/status", s.updateBackupJobStatusHandler)
	s.echo.POST("/api/dashboard/restore-jobs", s.createRestoreJobHandler)
	s.echo.PATCH("/api/dashboard/restore-jobs/:id/status", s.updateRestoreJobStatusHandler)

	s.echo.GET("/api/assets", s.listAssetsHandler)
	s.echo.POST("/api/assets", s.createAssetHandler)
	s.echo.GET("/api/assets/:id", s.getAssetHandler)

	s.echo.GET("/api/policies", s.listPoliciesHandler)
	s.echo.POST("/api/policies", s.createPolicyHandler)
	s.echo.GET("/api/policies/:id", s.getPolicyHandler)

	s.echo.GET("/api/users", s.listUsersHandler)
	s.echo.POST("/api/users", s.createUserHandler)
	s.echo.GET("/api/users/:id", s.getUserHandler)

	s.echo.GET("/api/downloads", s.listDownloadsHandler)
}

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Dashboard

func (s *Server) getDashboardMetricsHandler(c echo.Context) error {
	m, err := s.store.GetDashboardMetrics(c.Request().Context())
	if err != nil {
		return respondReadError(c, err, msgFailedFetchMetrics)
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) updateDashboardMetricsHandler(c echo.Context) error {
	var in metrics.UpdateMetricsInput
	if err := bindStrictJSON(c, &in); err != nil {
		return respondBadRequest(c, msgInvalidMetricsData, err)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return respondBadRequest(c, msgInvalidMetricsData, apperrors.Validation(fields...))
	}

	m, err := s.store.UpdateDashboardMetrics(c.Request().Context(), in)
	if err != nil {
		return respondStoreError(c, err, msgInvalidMetricsData, msgFailedUpdateMetrics)
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) listRunningBackupsHandler(c echo.Context) error {
	backups, err := s.store.ListRunningBackups(c.Request().Context())
	if err != nil {
		return respondReadError(c, err, msgFailedFetchBackups)
	}
	return c.JSON(http.StatusOK, backups)
}

func (s *Server) listRunningRestoresHandler(c echo.Context) error {
	restores, err := s.store.ListRunningRestores(c.Request().Context())
	if err != nil {
		return respondReadError(c, err, msgFailedFetchRestores)
	}
	return c.JSON(http.StatusOK, restores)
}

func (s *Server) createBackupJobHandler(c echo.Context) error {
	var in job.CreateJobInput
	if err := bindStrictJSON(c, &in); err != nil {
		return respondBadRequest(c, msgInvalidJobData, err)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return respondBadRequest(c, msgInvalidJobData, apperrors.Validation(fields...))
	}

	created, err := s.store.CreateBackupJob(c.Request().Context(), in)
	if err != nil {
		return respondStoreError(c, err, msgInvalidJobData, msgFailedCreateJob)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateBackupJobStatusHandler(c echo.Context) error {
	var req statusUpdateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return respondBadRequest(c, msgInvalidStatusData, err)
	}
	if err := req.Status.Validate(); err != nil {
		return respondBadRequest(c, msgInvalidStatusData, err)
	}

	updated, err := s.store.UpdateBackupJobStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return respondStoreError(c, err, msgInvalidStatusData, msgFailedUpdateJob)
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) createRestoreJobHandler(c echo.Context) error {
	var in job.CreateJobInput
	if err := bindStrictJSON(c, &in); err != nil {
		return respondBadRequest(c, msgInvalidJobData, err)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return respondBadRequest(c, msgInvalidJobData, apperrors.Validation(fields...))
	}

	created, err := s.store.CreateRestoreJob(c.Request().Context(), in)
	if err != nil {
		return respondStoreError(c, err, msgInvalidJobData, msgFailedCreateJob)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateRestoreJobStatusHandler(c echo.Context) error {
	var req statusUpdateRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return respondBadRequest(c, msgInvalidStatusData, err)
	}
	if err := req.Status.Validate(); err != nil {
		return respondBadRequest(c, msgInvalidStatusData, err)
	}

	updated, err := s.store.UpdateRestoreJobStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return respondStoreError(c, err, msgInvalidStatusData, msgFailedUpdateJob)
	}
	return c.JSON(http.StatusOK, updated)
}

type statusUpdateRequest struct {
	Status job.Status `json:"status"`
}

// Assets

func (s *Server) listAssetsHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		assets []asset.Asset
		err    error
	)
	if assetType := c.QueryParam("type"); assetType != "" {
		assets, err = s.store.ListAssetsByType(ctx, assetType)
	} else {
		assets, err = s.store.ListAssets(ctx)
	}
	if err != nil {
		return respondReadError(c, err, msgFailedFetchAssets)
	}
	return c.JSON(http.StatusOK, assets)
}

func (s *Server) createAssetHandler(c echo.Context) error {
	var in asset.CreateAssetInput
	if err := bindStrictJSON(c, &in); err != nil {
		return respondBadRequest(c, msgInvalidAssetData, err)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return respondBadRequest(c, msgInvalidAssetData, apperrors.Validation(fields...))
	}

	created, err := s.store.CreateAsset(c.Request().Context(), in)
	if err != nil {
		return respondStoreError(c, err, msgInvalidAssetData, msgFailedCreateAsset)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) getAssetHandler(c echo.Context) error {
	a, err := s.store.GetAsset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err, msgInvalidAssetData, msgFailedFetchAssets)
	}
	return c.JSON(http.StatusOK, a)
}

// Policies

func (s *Server) listPoliciesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		policies []policy.Policy
		err      error
	)
	if policyType := c.QueryParam("type"); policyType != "" {
		policies, err = s.store.ListPoliciesByType(ctx, policyType)
	} else {
		policies, err = s.store.ListPolicies(ctx)
	}
	if err != nil {
		return respondReadError(c, err, msgFailedFetchPolicies)
	}
	return c.JSON(http.StatusOK, policies)
}

func (s *Server) createPolicyHandler(c echo.Context) error {
	var in policy.CreatePolicyInput
	if err := bindStrictJSON(c, &in); err != nil {
		return respondBadRequest(c, msgInvalidPolicyData, err)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return respondBadRequest(c, msgInvalidPolicyData, apperrors.Validation(fields...))
	}

	created, err := s.store.CreatePolicy(c.Request().Context(), in)
	if err != nil {
		return respondStoreError(c, err, msgInvalidPolicyData, msgFailedCreatePolicy)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) getPolicyHandler(c echo.Context) error {
	p, err := s.store.GetPolicy(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err, msgInvalidPolicyData, msgFailedFetchPolicies)
	}
	return c.JSON(http.StatusOK, p)
}

// Users

func (s *Server) listUsersHandler(c echo.Context) error {
	users, err := s.store.ListAppUsers(c.Request().Context())
	if err != nil {
		return respondReadError(c, err, msgFailedFetchUsers)
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) createUserHandler(c echo.Context) error {
	var in appuser.CreateAppUserInput
	if err := bindStrictJSON(c, &in); err != nil {
		return respondBadRequest(c, msgInvalidUserData, err)
	}
	if fields := in.Validate(); len(fields) > 0 {
		return respondBadRequest(c, msgInvalidUserData, apperrors.Validation(fields...))
	}

	created, err := s.store.CreateAppUser(c.Request().Context(), in)
	if err != nil {
		return respondStoreError(c, err, msgInvalidUserData, msgFailedCreateUser)
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) getUserHandler(c echo.Context) error {
	u, err := s.store.GetAppUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondStoreError(c, err, msgInvalidUserData, msgFailedFetchUsers)
	}
	return c.JSON(http.StatusOK, u)
}

// Downloads

func (s *Server) listDownloadsHandler(c echo.Context) error {
	artifacts := download.Catalog()

	if s.presigner != nil {
		for i := range artifacts {
			url, err := s.presigner.PresignGet(artifacts[i].ObjectKey, s.urlCache)
			if err != nil {
				return respondReadError(c, err, msgFailedFetchDownloads)
			}
			artifacts[i].DownloadURL = url
		}
	}

	return c.JSON(http.StatusOK, artifacts)
}
