package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/asset_compass/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation sentinel", fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation), http.StatusBadRequest},
		{"not found helper", apperrors.NewNotFoundError("holding not found"), http.StatusNotFound},
		{"wrapped not found helper", fmt.Errorf("refresh: %w", apperrors.NewNotFoundError("holding not found")), http.StatusNotFound},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"price unavailable", apperrors.NewPriceUnavailableError("bad ticker"), http.StatusBadGateway},
		{"app error with code", apperrors.NewAppError(http.StatusServiceUnavailable, "db down", errors.New("dial")), http.StatusServiceUnavailable},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewAppError(http.StatusInternalServerError, "failed to save holding", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save holding: connection reset", err.Error())
	assert.ErrorIs(t, apperrors.NewValidationError("bad"), apperrors.ErrValidation)
}
