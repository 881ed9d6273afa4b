package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonReq(body, contentType string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

func TestDecodeAny(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ct      string
		want    any
		wantErr bool
	}{
		{"object", `{"a":1}`, "application/json", map[string]any{"a": 1.0}, false},
		{"charset_param", `[]`, "application/json; charset=utf-8", []any{}, false},
		{"empty_body", ``, "application/json", nil, false},
		{"null", `null`, "application/json", nil, false},
		{"wrong_content_type", `{}`, "text/plain", nil, true},
		{"missing_content_type", `{}`, "", nil, true},
		{"malformed", `{"a":`, "application/json", nil, true},
		{"trailing_data", `{}{}`, "application/json", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAny(jsonReq(tt.body, tt.ct))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.HasCode(err, domain.CodeValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeObject_RejectsNonObjects(t *testing.T) {
	_, err := DecodeObject(jsonReq(`[1,2]`, "application/json"))
	assert.Error(t, err)

	obj, err := DecodeObject(jsonReq(`{"name":"x"}`, "application/json"))
	require.NoError(t, err)
	assert.Equal(t, "x", obj["name"])
}

type sample struct {
	Name  string `json:"name" validate:"required"`
	Rooms int    `json:"number_rooms"`
}

func TestBind(t *testing.T) {
	t.Run("copies_fields_and_ignores_unknown", func(t *testing.T) {
		var s sample
		require.NoError(t, Bind(map[string]any{"name": "Loft", "number_rooms": 2.0, "extra": true}, &s))
		assert.Equal(t, "Loft", s.Name)
		assert.Equal(t, 2, s.Rooms)
	})

	t.Run("missing_required_field_uses_json_name", func(t *testing.T) {
		var s sample
		err := Bind(map[string]any{}, &s)
		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "Missing name", ae.Message)
	})

	t.Run("wrong_type", func(t *testing.T) {
		var s sample
		err := Bind(map[string]any{"name": "x", "number_rooms": "two"}, &s)
		var ae *domain.AppError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "invalid field type", ae.Message)
		assert.Contains(t, ae.Meta, "number_rooms")
	})
}
