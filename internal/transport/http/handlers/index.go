package handlers

import (
	"net/http"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
)

type IndexHandler struct {
	svc *catalog.Service
}

func NewIndexHandler(svc *catalog.Service) *IndexHandler {
	return &IndexHandler{svc: svc}
}

func (h *IndexHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.StatusResp{Status: "OK"})
}

func (h *IndexHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Stats(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToStatsResp(counts))
}
