package asset

import (
	"fmt"
	"time"

	apperrors "backup-admin/pkg/errors"
	"backup-admin/pkg/validator"
)

// Asset is a protected mailbox or drive configured for backup.
type Asset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Type         Type      `json:"type"`
	UserName     string    `json:"userName"`
	UserEmail    string    `json:"userEmail"`
	Status       Status    `json:"status"`
	ConfiguredOn time.Time `json:"configuredOn"`
}

// CreateAssetInput is the client-suppliable subset of Asset. The id and
// configuredOn fields are always assigned by the store.
type CreateAssetInput struct {
	Name      string `json:"name"`
	Type      Type   `json:"type"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Status    Status `json:"status"`
}

type Type string

const (
	TypeGmail Type = "gmail"
	TypeDrive Type = "drive"

	errInvalidTypeFmt = "invalid asset type: %s"
)

// Validate validates the asset type
func (t Type) Validate() error {
	switch t {
	case TypeGmail, TypeDrive:
		return nil
	default:
		return fmt.Errorf(errInvalidTypeFmt, t)
	}
}

type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"

	errInvalidStatusFmt = "invalid asset status: %s"
)

// Validate validates the asset status
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusPending, StatusInactive:
		return nil
	default:
		return fmt.Errorf(errInvalidStatusFmt, s)
	}
}

// Validate checks the insert payload field by field and returns every
// violation found, so the caller can report them all at once.
func (in CreateAssetInput) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError

	if err := validator.Name(in.Name); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: err.Error()})
	}
	if err := in.Type.Validate(); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "type", Message: err.Error()})
	}
	if err := validator.Name(in.UserName); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "userName", Message: err.Error()})
	}
	if err := validator.Email(in.UserEmail); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "userEmail", Message: err.Error()})
	}
	if err := in.Status.Validate(); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "status", Message: err.Error()})
	}

	return fields
}
