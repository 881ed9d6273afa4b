package handlers

import (
	"net/http"

	"github.com/baechuer/hbnb-service/internal/application/search"
	"github.com/baechuer/hbnb-service/internal/metrics"
	"github.com/baechuer/hbnb-service/internal/transport/http/dto"
	"github.com/baechuer/hbnb-service/internal/transport/http/response"
	"github.com/baechuer/hbnb-service/internal/transport/http/validate"
)

type SearchHandler struct {
	resolver *search.Resolver
}

func NewSearchHandler(resolver *search.Resolver) *SearchHandler {
	return &SearchHandler{resolver: resolver}
}

// PlacesSearch serves POST /places_search.
func (h *SearchHandler) PlacesSearch(w http.ResponseWriter, r *http.Request) {
	body, err := validate.DecodeAny(r)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	q := search.Normalize(body)
	places, err := h.resolver.Resolve(r.Context(), q)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	metrics.RecordSearch(shape(q), len(places))
	response.JSON(w, http.StatusOK, dto.List(places, dto.ToPlaceResp))
}

func shape(q search.Query) string {
	n := 0
	s := "unfiltered"
	if len(q.States) > 0 {
		n, s = n+1, "states"
	}
	if len(q.Cities) > 0 {
		n, s = n+1, "cities"
	}
	if len(q.Amenities) > 0 {
		n, s = n+1, "amenities"
	}
	if n > 1 {
		return "combined"
	}
	return s
}
