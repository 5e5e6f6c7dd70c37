package echo

// Public response messages. The 500 variants are deliberately generic; the
// underlying error goes to the log, never to the client.
const (
	msgFailedFetchMetrics   = "Failed to fetch dashboard metrics"
	msgFailedUpdateMetrics  = "Failed to update dashboard metrics"
	msgFailedFetchBackups   = "Failed to fetch running backups"
	msgFailedFetchRestores  = "Failed to fetch running restores"
	msgFailedFetchAssets    = "Failed to fetch assets"
	msgFailedCreateAsset    = "Failed to create asset"
	msgFailedFetchPolicies  = "Failed to fetch policies"
	msgFailedCreatePolicy   = "Failed to create policy"
	msgFailedFetchUsers     = "Failed to fetch users"
	msgFailedCreateUser     = "Failed to create user"
	msgFailedCreateJob      = "Failed to create job"
	msgFailedUpdateJob      = "Failed to update job"
	msgFailedFetchDownloads = "Failed to fetch downloads"

	msgInvalidAssetData   = "Invalid asset data"
	msgInvalidPolicyData  = "Invalid policy data"
	msgInvalidUserData    = "Invalid user data"
	msgInvalidJobData     = "Invalid job data"
	msgInvalidMetricsData = "Invalid metrics data"
	msgInvalidStatusData  = "Invalid status data"
)
