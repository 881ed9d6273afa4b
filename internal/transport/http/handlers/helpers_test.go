package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/infrastructure/memory"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type mockClock struct{ t time.Time }

func (m mockClock) Now() time.Time { return m.t }

type plainHasher struct{}

func (plainHasher) Hash(pw string) (string, error) { return "h:" + pw, nil }

func newService(t *testing.T) (*catalog.Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	return catalog.New(store, plainHasher{}, nil, mockClock{t: now}), store
}

// newReq builds a request with chi URL params set, as the router would.
func newReq(method, target string, body string, params map[string]string) *http.Request {
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func errBody(t *testing.T, rr *httptest.ResponseRecorder) response.ErrorPayload {
	t.Helper()
	return decode[response.ErrorBody](t, rr).Error
}
