package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/baechuer/hbnb-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUserResp_OmitsPassword(t *testing.T) {
	now := time.Date(2025, 12, 25, 10, 0, 0, 0, time.UTC)
	u := &domain.User{
		Base:     domain.Base{ID: "u1", CreatedAt: now, UpdatedAt: now},
		Email:    "a@b.c",
		Password: "$2a$10$hash",
	}

	b, err := json.Marshal(ToUserResp(u))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "User", m["__class__"])
	assert.Equal(t, "u1", m["id"])
	assert.NotContains(t, m, "password")
}

func TestToPlaceResp_EmptyAmenitiesEncodeAsArray(t *testing.T) {
	b, err := json.Marshal(ToPlaceResp(&domain.Place{Base: domain.Base{ID: "p1"}}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"amenity_ids":[]`)
	assert.Contains(t, string(b), `"__class__":"Place"`)
}

func TestList_NeverNil(t *testing.T) {
	out := List([]*domain.State(nil), ToStateResp)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestToStatsResp(t *testing.T) {
	got := ToStatsResp(map[domain.Kind]int{domain.KindPlace: 3, domain.KindUser: 1})
	assert.Equal(t, StatsResp{Places: 3, Users: 1}, got)
}
