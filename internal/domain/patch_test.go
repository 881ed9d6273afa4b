package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacePatch_Apply(t *testing.T) {
	t.Run("assigns_allow_listed_fields", func(t *testing.T) {
		p := &Place{Name: "old"}
		changed, err := PlacePatch.Apply(p, map[string]any{
			"name":           "new",
			"number_rooms":   float64(3),
			"latitude":       12.5,
			"price_by_night": float64(100),
		})
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "new", p.Name)
		assert.Equal(t, 3, p.NumberRooms)
		assert.Equal(t, 12.5, p.Latitude)
		assert.Equal(t, 100, p.PriceByNight)
	})

	t.Run("ignores_protected_and_unknown_fields", func(t *testing.T) {
		p := &Place{Base: Base{ID: "p1"}, CityID: "c1", UserID: "u1"}
		changed, err := PlacePatch.Apply(p, map[string]any{
			"id":         "hijack",
			"city_id":    "c2",
			"user_id":    "u2",
			"created_at": "2020-01-01",
			"color":      "blue",
		})
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, "c1", p.CityID)
		assert.Equal(t, "u1", p.UserID)
	})

	t.Run("rejects_wrong_type", func(t *testing.T) {
		p := &Place{}
		_, err := PlacePatch.Apply(p, map[string]any{"number_rooms": "three"})
		require.Error(t, err)
		assert.True(t, HasCode(err, CodeValidation))
	})

	t.Run("rejects_fractional_int", func(t *testing.T) {
		p := &Place{}
		_, err := PlacePatch.Apply(p, map[string]any{"max_guest": 2.5})
		require.Error(t, err)
	})
}

func TestUserPatch_DoesNotTouchEmailOrPassword(t *testing.T) {
	u := &User{Email: "a@b.c", Password: "hash"}
	changed, err := UserPatch.Apply(u, map[string]any{
		"email":      "x@y.z",
		"password":   "plain",
		"first_name": "Ada",
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "a@b.c", u.Email)
	assert.Equal(t, "hash", u.Password)
	assert.Equal(t, "Ada", u.FirstName)
}

func TestIntField_RejectsOutOfRange(t *testing.T) {
	for _, v := range []float64{1e300, -1e300, 9.3e18, 2.5} {
		p := &Place{NumberRooms: 2}
		_, err := PlacePatch.Apply(p, map[string]any{"number_rooms": v})
		require.Error(t, err, v)
		assert.True(t, HasCode(err, CodeValidation))
		assert.Equal(t, 2, p.NumberRooms)
	}

	p := &Place{}
	_, err := PlacePatch.Apply(p, map[string]any{"max_guest": float64(1 << 40)})
	require.NoError(t, err)
	assert.Equal(t, 1<<40, p.MaxGuest)
}
