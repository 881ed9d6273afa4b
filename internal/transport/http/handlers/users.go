package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/hbnb-service/internal/application/catalog"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/baechuer/hbnb-service/internal/transport/http/validate"
)

type UsersHandler struct {
	svc *catalog.Service
}

func NewUsersHandler(svc *catalog.Service) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.List(users, dto.ToUserResp))
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "user_id"))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToUserResp(u))
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.CreateUserReq
	if err := validate.Bind(obj, &req); err != nil {
		response.Err(w, r, err)
		return
	}
	u, err := h.svc.CreateUser(r.Context(), catalog.CreateUserCmd{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, dto.ToUserResp(u))
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	obj, err := validate.DecodeObject(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	id := chi.URLParam(r, "user_id")
	u, err := h.svc.UpdateUser(r.Context(), id, obj)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, dto.ToUserResp(u))
}

func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "user_id")); err != nil {
		response.Err(w, r, err)
		return
	}
	response.Empty(w)
}
