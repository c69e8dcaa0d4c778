package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewUserError("failed to save", inner)

	assert.Equal(t, "failed to save: disk full", err.Error())
	assert.ErrorIs(t, err, inner)

	var userErr *UserError
	assert.ErrorAs(t, err, &userErr)
	assert.Equal(t, "failed to save", userErr.UserMessage)
}

func TestUserErrorWithoutCause(t *testing.T) {
	err := NewUserError("something went wrong", nil)
	assert.Equal(t, "something went wrong", err.Error())
}
