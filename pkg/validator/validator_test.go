package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("john.doe@company.com"))
	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("@company.com"))
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("Default Gmail Policy"))
	assert.Error(t, Name(""))
	assert.Error(t, Name(strings.Repeat("x", 256)))
	assert.Error(t, Name("bad\x00name"))
}

func TestUserID(t *testing.T) {
	assert.NoError(t, UserID("USR-001"))
	assert.Error(t, UserID(""))
	assert.Error(t, UserID("USR 001"))
}

func TestCount(t *testing.T) {
	assert.NoError(t, Count(0))
	assert.NoError(t, Count(847))
	assert.Error(t, Count(-1))
}

func TestDataSize(t *testing.T) {
	assert.NoError(t, DataSize("247.8 TB"))
	assert.Error(t, DataSize(""))
}
