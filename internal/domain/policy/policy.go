package policy

import (
	"time"

	"backup-admin/internal/domain/asset"
	apperrors "backup-admin/pkg/errors"
	"backup-admin/pkg/validator"
)

// Policy is a backup policy mapped onto a set of users.
type Policy struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Type            asset.Type `json:"type"`
	UsersMapped     int        `json:"usersMapped"`
	AutoBackup      bool       `json:"autoBackup"`
	BackupAllEmails bool       `json:"backupAllEmails"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// CreatePolicyInput is the client-suppliable subset of Policy. AutoBackup and
// BackupAllEmails are pointers so an absent field keeps its default of true.
type CreatePolicyInput struct {
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Type            asset.Type `json:"type"`
	UsersMapped     int        `json:"usersMapped"`
	AutoBackup      *bool      `json:"autoBackup"`
	BackupAllEmails *bool      `json:"backupAllEmails"`
}

// AutoBackupValue resolves the AutoBackup default.
func (in CreatePolicyInput) AutoBackupValue() bool {
	if in.AutoBackup == nil {
		return true
	}
	return *in.AutoBackup
}

// BackupAllEmailsValue resolves the BackupAllEmails default.
func (in CreatePolicyInput) BackupAllEmailsValue() bool {
	if in.BackupAllEmails == nil {
		return true
	}
	return *in.BackupAllEmails
}

// Validate checks the insert payload and returns all field violations found.
func (in CreatePolicyInput) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError

	if err := validator.Name(in.Name); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: err.Error()})
	}
	if err := validator.Description(in.Description); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "description", Message: err.Error()})
	}
	if err := in.Type.Validate(); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "type", Message: err.Error()})
	}
	if err := validator.Count(in.UsersMapped); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "usersMapped", Message: err.Error()})
	}

	return fields
}
