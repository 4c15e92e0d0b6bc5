package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "Feature not found"),
			expected: "[NOT_FOUND] Feature not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeConfig, "failed to load config", stderrors.New("permission denied")),
			expected: "[CONFIG_ERROR] failed to load config: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Same(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestError_Is(t *testing.T) {
	err1 := NewConflictError("restart already pending")
	err2 := NewConflictError("other conflict")
	err3 := NewUnauthorizedError("Invalid credentials")

	assert.True(t, stderrors.Is(err1, err2))
	assert.False(t, stderrors.Is(err1, err3))
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewNotFoundError("File"))

	assert.Equal(t, ErrCodeNotFound, CodeOf(wrapped))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("plain")))
	assert.True(t, IsCode(wrapped, ErrCodeNotFound))
	assert.False(t, IsCode(nil, ErrCodeNotFound))
}

func TestNewNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("API")

	assert.Equal(t, "API not found", err.Message)
	assert.Equal(t, ErrCodeNotFound, err.Code)
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewConflictError("Restart already in progress"))

	assert.Equal(t, "Restart already in progress", MessageOf(wrapped, "fallback"))
	assert.Equal(t, "fallback", MessageOf(stderrors.New("plain"), "fallback"))
}
