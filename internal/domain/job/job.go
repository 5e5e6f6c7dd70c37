package job

import (
	"fmt"
	"time"

	"backup-admin/internal/domain/asset"
	apperrors "backup-admin/pkg/errors"
	"backup-admin/pkg/validator"
)

// BackupJob is one backup run for a single user.
type BackupJob struct {
	ID        string     `json:"id"`
	UserEmail string     `json:"userEmail"`
	Type      asset.Type `json:"type"`
	Status    Status     `json:"status"`
	StartedAt time.Time  `json:"startedAt"`
}

// RestoreJob is one restore run for a single user.
type RestoreJob struct {
	ID        string     `json:"id"`
	UserEmail string     `json:"userEmail"`
	Type      asset.Type `json:"type"`
	Status    Status     `json:"status"`
	StartedAt time.Time  `json:"startedAt"`
}

// CreateJobInput is the client-suppliable subset of a backup or restore job.
// Both job kinds share the same insert shape.
type CreateJobInput struct {
	UserEmail string     `json:"userEmail"`
	Type      asset.Type `json:"type"`
	Status    Status     `json:"status"`
}

type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"

	errInvalidStatusFmt     = "invalid job status: %s"
	errIllegalTransitionFmt = "illegal status transition: %s -> %s"
)

// Validate validates the job status
func (s Status) Validate() error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf(errInvalidStatusFmt, s)
	}
}

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransitionTo reports whether moving from s to next is legal. Only
// running jobs move, and only to a terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusRunning && next.Terminal()
}

// TransitionError builds the validation error for an illegal move.
func (s Status) TransitionError(next Status) *apperrors.ValidationError {
	return apperrors.Validation(apperrors.FieldError{
		Field:   "status",
		Message: fmt.Sprintf(errIllegalTransitionFmt, s, next),
	})
}

// Validate checks the insert payload and returns all field violations found.
func (in CreateJobInput) Validate() []apperrors.FieldError {
	var fields []apperrors.FieldError

	if err := validator.Email(in.UserEmail); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "userEmail", Message: err.Error()})
	}
	if err := in.Type.Validate(); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "type", Message: err.Error()})
	}
	if err := in.Status.Validate(); err != nil {
		fields = append(fields, apperrors.FieldError{Field: "status", Message: err.Error()})
	}

	return fields
}
