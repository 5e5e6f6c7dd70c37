package metrics

import (
	"time"

	apperrors "backup-admin/pkg/errors"
	"backup-admin/pkg/validator"
)

// DashboardMetrics is the dashboard's headline-number singleton. Exactly one
// row exists; updates merge into it in place.
type DashboardMetrics struct {
	ID                       string    `json:"id"`
	ActiveUsers              int       `json:"activeUsers"`
	ActiveAssets             int       `json:"activeAssets"`
	FullBackupsCompleted     int       `json:"fullBackupsCompleted"`
	AssetsNotProtected       int       `json:"assetsNotProtected"`
	TotalDataBackedUp        string    `json:"totalDataBackedUp"`
	CurrentlyRunningBackups  int       `json:"currentlyRunningBackups"`
	CompletedRestores        int       `json:"completedRestores"`
	UsersWithoutActiveAssets int       `json:"usersWithoutActiveAssets"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// UpdateMetricsInput is a partial patch of the singleton. Absent fields keep
// their current values; the store restamps UpdatedAt on every merge.
type UpdateMetricsInput struct {
	ActiveUsers              *int    `json:"activeUsers"`
	ActiveAssets             *int    `json:"activeAssets"`
	FullBackupsCompleted     *int    `json:"fullBackupsCompleted"`
	AssetsNotProtected       *int    `json:"assetsNotProtected"`
	TotalDataBackedUp        *string `json:"totalDataBackedUp"`
	CurrentlyRunningBackups  *int    `json:"currentlyRunningBackups"`
	CompletedRestores        *int    `json:"completedRestores"`
	UsersWithoutActiveAssets *int    `json:"usersWithoutActiveAssets"`
}

// Validate checks the patch and returns all field violations found.
func (in UpdateMetricsInput) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError

	counts := []struct {
		name  string
		value *int
	}{
		{"activeUsers", in.ActiveUsers},
		{"activeAssets", in.ActiveAssets},
		{"fullBackupsCompleted", in.FullBackupsCompleted},
		{"assetsNotProtected", in.AssetsNotProtected},
		{"currentlyRunningBackups", in.CurrentlyRunningBackups},
		{"completedRestores", in.CompletedRestores},
		{"usersWithoutActiveAssets", in.UsersWithoutActiveAssets},
	}
	for _, c := range counts {
		if c.value == nil {
			continue
		}
		if err := validator.Count(*c.value); err != nil {
			fields = append(fields, apperrors.FieldError{Field: c.name, Message: err.Error()})
		}
	}

	if in.TotalDataBackedUp != nil {
		if err := validator.DataSize(*in.TotalDataBackedUp); err != nil {
			fields = append(fields, apperrors.FieldError{Field: "totalDataBackedUp", Message: err.Error()})
		}
	}

	return fields
}

// Apply merges the patch into current, leaving untouched fields alone. The
// caller owns id and timestamp handling.
func (in UpdateMetricsInput) Apply(current DashboardMetrics) DashboardMetrics {
	if in.ActiveUsers != nil {
		current.ActiveUsers = *in.ActiveUsers
	}
	if in.ActiveAssets != nil {
		current.ActiveAssets = *in.ActiveAssets
	}
	if in.FullBackupsCompleted != nil {
		current.FullBackupsCompleted = *in.FullBackupsCompleted
	}
	if in.AssetsNotProtected != nil {
		current.AssetsNotProtected = *in.AssetsNotProtected
	}
	if in.TotalDataBackedUp != nil {
		current.TotalDataBackedUp = *in.TotalDataBackedUp
	}
	if in.CurrentlyRunningBackups != nil {
		current.CurrentlyRunningBackups = *in.CurrentlyRunningBackups
	}
	if in.CompletedRestores != nil {
		current.CompletedRestores = *in.CompletedRestores
	}
	if in.UsersWithoutActiveAssets != nil {
		current.UsersWithoutActiveAssets = *in.UsersWithoutActiveAssets
	}
	return current
}
