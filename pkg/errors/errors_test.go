package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneMatchesSentinel(t *testing.T) {
	err := Clone(ErrNotFound, "student record not found")

	assert.True(t, stderrors.Is(err, ErrNotFound))
	assert.False(t, stderrors.Is(err, ErrValidation))
	assert.Equal(t, "student record not found", err.Message)
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestWrapAsKeepsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := WrapAs(ErrBackend, cause, "")

	assert.Equal(t, http.StatusBadGateway, err.Status)
	assert.Equal(t, "backend request failed: dial tcp: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, fmt.Errorf("load: %w", err), ErrBackend)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	err := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Nil(t, FromError(nil))

	typed := Clone(ErrForbidden, "")
	assert.Same(t, typed, FromError(typed))
}
