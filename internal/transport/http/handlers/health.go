package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/baechuer/hbnb-service/internal/transport/http/response"
)

// Pinger is any dependency the readiness probe should check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	deps map[string]Pinger
}

func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz pings every dependency; any failure answers 503.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	out := map[string]string{"status": "ok"}
	status := http.StatusOK
	for name, p := range h.deps {
		if err := p.PingContext(ctx); err != nil {
			out[name] = "down"
			out["status"] = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		out[name] = "up"
	}
	response.JSON(w, status, out)
}
