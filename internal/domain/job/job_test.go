package job

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"backup-admin/internal/domain/asset"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, StatusRunning.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusRunning.CanTransitionTo(StatusFailed))

	assert.False(t, StatusRunning.CanTransitionTo(StatusRunning))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusRunning))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusFailed))
	assert.False(t, StatusFailed.CanTransitionTo(StatusCompleted))
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusRunning.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestCreateJobInput_Validate(t *testing.T) {
	in := CreateJobInput{
		UserEmail: "john.doe@company.com",
		Type:      asset.TypeGmail,
		Status:    StatusRunning,
	}
	assert.Empty(t, in.Validate())

	in.Status = "queued"
	fields := in.Validate()
	assert.Len(t, fields, 1)
	assert.Equal(t, "status", fields[0].Field)
}
