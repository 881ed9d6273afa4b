package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baechuer/hbnb-service/internal/domain"
	appCtx "github.com/baechuer/hbnb-service/internal/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not_found", domain.ErrNotFound("State not found"), http.StatusNotFound, "not_found", "State not found"},
		{"validation", domain.ErrValidation("Missing name"), http.StatusBadRequest, "validation_error", "Missing name"},
		{"invalid_state", domain.ErrInvalidState("dangling"), http.StatusConflict, "invalid_state", "dangling"},
		{"rate_limited", domain.ErrRateLimited("slow down"), http.StatusTooManyRequests, "rate_limited", "slow down"},
		{"generic_error", errors.New("db crash"), http.StatusInternalServerError, "internal_error", "internal error"},
		{"nil_error", nil, http.StatusInternalServerError, "internal_error", "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
			req = req.WithContext(appCtx.WithRequestID(req.Context(), "req-42"))

			Err(rr, req, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.Equal(t, "req-42", body.Error.RequestID)
		})
	}
}

func TestErr_CarriesMeta(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Err(rr, req, domain.ErrValidationMeta("invalid field type", map[string]string{"name": "must be a string"}))

	var body ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "must be a string", body.Error.Meta["name"])
}

func TestJSON_BareBody(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusCreated, map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":"123"}`, rr.Body.String())
}

func TestEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	Empty(rr)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{}`, rr.Body.String())
}
