package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/baechuer/hbnb-service/internal/transport/http/validate"
)

type CitiesHandler struct {
	svc *catalog.Service
}

func NewCitiesHandler(svc *catalog.Service) *CitiesHandler {
	return &CitiesHandler{svc: svc}
}

// ListByState serves GET /states/{state_id}/cities.
func (h *CitiesHandler) ListByState(w http.ResponseWriter, r *http.Request) {
	cities, err := h.svc.ListCities(r.Context(), chi.URLParam(r, "state_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.List(cities, dto.ToCityResp))
}

func (h *CitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCity(r.Context(), chi.URLParam(r, "city_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToCityResp(c))
}

func (h *CitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	stateID := chi.URLParam(r, "state_id")
	if _, err := h.svc.GetState(r.Context(), stateID); err != nil {
		response.Err(w, r, err)
		return
	}
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreateCityReq
	if err := validate.Bind(obj, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	c, err := h.svc.CreateCity(r.Context(), stateID, catalog.CreateCityCmd{Name: req.Name})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToCityResp(c))
}

func (h *CitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	id := chi.URLParam(r, "city_id")
	c, err := h.svc.UpdateCity(r.Context(), id, obj)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToCityResp(c))
}

func (h *CitiesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCity(r.Context(), chi.URLParam(r, "city_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Empty(w)
}
