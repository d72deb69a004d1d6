package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
)

func serveError(t *testing.T, err error) (int, *dto.ErrorDetail) {
	t.Helper()

	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Success)
	return w.Code, resp.Error
}

func TestHandleAPIError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"landlord not verified", apperrors.ErrLandlordNotVerified, http.StatusForbidden, dto.ErrorCodeNotVerified},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"wrapped forbidden", apperrors.NewForbiddenError("you are not a party to this booking"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"listing not found", apperrors.ErrListingNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"booking not found", apperrors.ErrBookingNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"listing unavailable", apperrors.ErrListingUnavailable, http.StatusBadRequest, dto.ErrorCodeListingUnavailable},
		{"duplicate booking", apperrors.ErrDuplicateBooking, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"already reviewed", apperrors.ErrAlreadyReviewed, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"email taken", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"validation", apperrors.NewValidationError("no fields to update"), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, detail := serveError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, detail.Code)
		})
	}
}

func TestHandleAPIErrorMasksInternals(t *testing.T) {
	_, detail := serveError(t, errors.New("pq: connection refused"))

	assert.Equal(t, "Internal server error", detail.Message)
	assert.NotContains(t, detail.Message, "connection refused")
}

func TestHandleAPIErrorUsesWrappedMessage(t *testing.T) {
	_, detail := serveError(t, apperrors.NewNotFoundError("landlord not found"))

	assert.Equal(t, "landlord not found", detail.Message)
}

func TestHandleValidationError(t *testing.T) {
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		HandleValidationError(c, errors.New("Key: 'email' Error:Field validation failed"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
}
