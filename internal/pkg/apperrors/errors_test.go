package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(New(KindNotFound, "gone")))
	assert.Equal(t, KindValidation, KindOf(New(KindValidation, "bad input")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindOfUnwrapsWrappedErrors(t *testing.T) {
	inner := New(KindValidation, "license plate already registered")
	wrapped := fmt.Errorf("partner registration failed at vehicle step: %w", inner)

	assert.True(t, IsValidation(wrapped))
	assert.Equal(t, KindValidation, KindOf(wrapped))
}

func TestNotFound(t *testing.T) {
	err := NotFound("trip", "abc-123")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "trip abc-123 not found", err.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindUnavailable, "matching backend unreachable", cause)

	assert.True(t, IsUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(KindNotFound, "x"), http.StatusNotFound},
		{New(KindInvalidState, "x"), http.StatusConflict},
		{New(KindUnauthorized, "x"), http.StatusForbidden},
		{New(KindValidation, "x"), http.StatusBadRequest},
		{New(KindUnavailable, "x"), http.StatusServiceUnavailable},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.err))
	}
}
