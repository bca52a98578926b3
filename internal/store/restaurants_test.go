package store

import (
	"context"
	"testing"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/apperrors"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurantCreateAndByPath(t *testing.T) {
	conn := newTestDB(t)
	restaurants := NewRestaurantStore(conn)
	ctx := context.Background()

	created, err := restaurants.Create(ctx, NewRestaurant{
		Name:    "La Mesa",
		Path:    "la-mesa",
		Cuisine: "colombian",
	})
	require.NoError(t, err)

	byPath, err := restaurants.ByPath(ctx, "la-mesa")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPath.ID)

	_, err = restaurants.ByPath(ctx, "unknown")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRestaurantCreateDuplicatePath(t *testing.T) {
	conn := newTestDB(t)
	restaurants := NewRestaurantStore(conn)
	ctx := context.Background()

	_, err := restaurants.Create(ctx, NewRestaurant{Name: "A", Path: "same"})
	require.NoError(t, err)

	_, err = restaurants.Create(ctx, NewRestaurant{Name: "B", Path: "same"})

	var validation *apperrors.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "path", validation.Field)
}

func TestRestaurantUpdateRating(t *testing.T) {
	conn := newTestDB(t)
	restaurants := NewRestaurantStore(conn)
	ctx := context.Background()

	created, err := restaurants.Create(ctx, NewRestaurant{Name: "A", Path: "a"})
	require.NoError(t, err)
	assert.Zero(t, created.Rating)

	updated, err := restaurants.UpdateRating(ctx, created.ID, 4.5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, updated.Rating)

	_, err = restaurants.UpdateRating(ctx, "missing", 3)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRestaurantByIDIncludesActiveVenuesOnly(t *testing.T) {
	conn := newTestDB(t)
	restaurants := NewRestaurantStore(conn)
	venues := NewVenueStore(conn)
	ctx := context.Background()

	created, err := restaurants.Create(ctx, NewRestaurant{Name: "A", Path: "a"})
	require.NoError(t, err)

	kept, err := venues.Create(ctx, newVenueInput(created.ID))
	require.NoError(t, err)

	dropped, err := venues.Create(ctx, newVenueInput(created.ID))
	require.NoError(t, err)
	require.NoError(t, venues.Deactivate(ctx, dropped.ID))

	loaded, err := restaurants.ByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Venues, 1)
	assert.Equal(t, kept.ID, loaded.Venues[0].ID)
}

func TestRestaurantDelete(t *testing.T) {
	conn := newTestDB(t)
	restaurants := NewRestaurantStore(conn)
	ctx := context.Background()

	created, err := restaurants.Create(ctx, NewRestaurant{Name: "A", Path: "a"})
	require.NoError(t, err)

	require.NoError(t, restaurants.Delete(ctx, created.ID))
	assert.Zero(t, countRows(t, conn, &models.Restaurant{}, "id = ?", created.ID))

	require.ErrorIs(t, restaurants.Delete(ctx, created.ID), apperrors.ErrNotFound)
}
