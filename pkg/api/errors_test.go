package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multichannel-ai/agentrouter/pkg/services"
)

func TestWriteServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectCode   int
		expectReason string
	}{
		{
			name:         "invalid format maps to 422",
			err:          services.NewValidationError("phone_number", services.ReasonInvalidFormat, "bad phone"),
			expectCode:   http.StatusUnprocessableEntity,
			expectReason: services.ReasonInvalidFormat,
		},
		{
			name:         "dangling reference maps to 422",
			err:          services.NewValidationError("agent_id", services.ReasonDanglingReference, "no such agent"),
			expectCode:   http.StatusUnprocessableEntity,
			expectReason: services.ReasonDanglingReference,
		},
		{
			name:         "conflicting primary maps to 409",
			err:          services.NewValidationError("is_primary", services.ReasonConflictingPrimary, "primary taken"),
			expectCode:   http.StatusConflict,
			expectReason: services.ReasonConflictingPrimary,
		},
		{
			name:         "route miss maps to 404 with reason",
			err:          &services.RouteNotFoundError{PhoneNumber: "+15551234567", Reason: services.RouteReasonNoChannel},
			expectCode:   http.StatusNotFound,
			expectReason: services.RouteReasonNoChannel,
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
		},
		{
			name:         "already exists maps to 409",
			err:          fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode:   http.StatusConflict,
			expectReason: services.ReasonDuplicateID,
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)

			writeServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			if tt.expectReason != "" {
				assert.Equal(t, tt.expectReason, body["reason"])
			}
		})
	}
}
