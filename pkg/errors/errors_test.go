// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookup

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/shkit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "lock_held_error",
			code:    errors.ErrLockHeld,
			message: "lock job-x is held by pid 42",
			wantStr: "[LOCK_HELD] lock job-x is held by pid 42",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty lock id",
			wantStr: "[INVALID_INPUT] empty lock id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrExecNotFound, "command %q not found", "nope")
	assert.Equal(t, `command "nope" not found`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrLockIO, "cannot write lock record")

		assert.Equal(t, errors.ErrLockIO, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[LOCK_IO] cannot write lock record: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLockHeld, "held").
		WithDetail("id", "job-x").
		WithDetail("pid", 42)

	assert.Equal(t, "job-x", err.Details["id"])
	assert.Equal(t, 42, err.Details["pid"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrLockHeld, "error 1")
	err2 := errors.New(errors.ErrLockHeld, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrLockHeld, "held"), errors.ErrLockHeld, true},
		{"different_code", errors.New(errors.ErrLockHeld, "held"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrExecStart, "start"), errors.ErrExecStart, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrHarnessUnavailable, errors.GetErrorCode(errors.New(errors.ErrHarnessUnavailable, "no script")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	ioErr := errors.Wrap(rootCause, errors.ErrLockIO, "cannot read record")
	cfgErr := errors.Wrap(ioErr, errors.ErrConfigLoad, "failed to load config")

	assert.True(t, errors.IsErrorCode(cfgErr, errors.ErrConfigLoad))

	var inner *errors.ShkitError
	require.True(t, stderrors.As(cfgErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrLockIO, inner.Code)
	assert.True(t, stderrors.Is(cfgErr, rootCause))
}
