package appuser

import (
	"fmt"
	"time"

	apperrors "backup-admin/pkg/errors"
	"backup-admin/pkg/validator"
)

// AppUser is an account visible on the user-management page. UserID and
// EmailAddress are unique within the collection.
type AppUser struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	DisplayName  string    `json:"displayName"`
	EmailAddress string    `json:"emailAddress"`
	Status       Status    `json:"status"`
	LastModified time.Time `json:"lastModified"`
}

// CreateAppUserInput is the client-suppliable subset of AppUser.
type CreateAppUserInput struct {
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
	Status       Status `json:"status"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusPending  Status = "pending"
	StatusInactive Status = "inactive"

	errInvalidStatusFmt = "invalid user status: %s"
)

// Validate validates the user status
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusPending, StatusInactive:
		return nil
	default:
		return fmt.Errorf(errInvalidStatusFmt, s)
	}
}

// Validate checks the insert payload and returns all field violations found.
func (in CreateAppUserInput) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError

	if err := validator.UserID(in.UserID); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "userId", Message: err.Error()})
	}
	if err := validator.Name(in.DisplayName); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "displayName", Message: err.Error()})
	}
	if err := validator.Email(in.EmailAddress); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "emailAddress", Message: err.Error()})
	}
	if err := in.Status.Validate(); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "status", Message: err.Error()})
	}

	return fields
}
