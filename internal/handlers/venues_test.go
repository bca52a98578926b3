package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedVenue(t *testing.T, conn *gorm.DB, active bool) *models.RestaurantVenue {
	t.Helper()

	restaurant := models.Restaurant{ID: "rest-1", Name: "La Mesa", Path: "la-mesa-" + t.Name()}
	require.NoError(t, conn.Create(&restaurant).Error)

	venue := models.RestaurantVenue{
		ID:           "venue-" + t.Name(),
		Name:         "Centro",
		City:         "Bogota",
		Active:       active,
		RestaurantID: restaurant.ID,
	}
	require.NoError(t, conn.Create(&venue).Error)
	return &venue
}

func TestVenueListExcludesInactive(t *testing.T) {
	r, conn := newTestRouter(t)

	seedVenue(t, conn, false)

	w := doJSON(t, r, http.MethodGet, "/api/venues", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Venues []models.RestaurantVenue `json:"venues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Venues)
}

func TestVenueSoftDeleteFlow(t *testing.T) {
	r, conn := newTestRouter(t)

	venue := seedVenue(t, conn, true)

	w := doJSON(t, r, http.MethodGet, "/api/venues/"+venue.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/venues/"+venue.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Hidden from the active-only read path, but the row survives.
	w = doJSON(t, r, http.MethodGet, "/api/venues/"+venue.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var raw models.RestaurantVenue
	require.NoError(t, conn.First(&raw, "id = ?", venue.ID).Error)
	assert.False(t, raw.Active)
}
