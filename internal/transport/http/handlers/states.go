package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/baechuer/hbnb-service/internal/transport/http/validate"
)

type StatesHandler struct {
	svc *catalog.Service
}

func NewStatesHandler(svc *catalog.Service) *StatesHandler {
	return &StatesHandler{svc: svc}
}

func (h *StatesHandler) List(w http.ResponseWriter, r *http.Request) {
	states, err := h.svc.ListStates(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.List(states, dto.ToStateResp))
}

func (h *StatesHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetState(r.Context(), chi.URLParam(r, "state_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToStateResp(st))
}

func (h *StatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreateStateReq
	if err := validate.Bind(obj, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	st, err := h.svc.CreateState(r.Context(), catalog.CreateStateCmd{Name: req.Name})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToStateResp(st))
}

func (h *StatesHandler) Update(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	id := chi.URLParam(r, "state_id")
	st, err := h.svc.UpdateState(r.Context(), id, obj)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToStateResp(st))
}

func (h *StatesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteState(r.Context(), chi.URLParam(r, "state_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Empty(w)
}
