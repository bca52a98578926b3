package store

import (
	"context"
	"errors"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/apperrors"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenueStore struct {
	db *gorm.DB
}

func NewVenueStore(db *gorm.DB) *VenueStore {
	return &VenueStore{db: db}
}

type NewVenue struct {
	Name         string
	Address      string
	City         string
	Photo        string
	Phone        string
	OpenHour     string
	CloseHour    string
	RestaurantID string
}

func (s *VenueStore) Create(ctx context.Context, in NewVenue) (*models.RestaurantVenue, error) {
	var restaurant models.Restaurant

	err := s.db.WithContext(ctx).First(&restaurant, "id = ?", in.RestaurantID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("restaurant_id", "unknown restaurant")
		}
		return nil, err
	}

	venue := models.RestaurantVenue{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Address:      in.Address,
		City:         in.City,
		Photo:        in.Photo,
		Phone:        in.Phone,
		OpenHour:     in.OpenHour,
		CloseHour:    in.CloseHour,
		Active:       true,
		RestaurantID: restaurant.ID,
	}

	if err := s.db.WithContext(ctx).Create(&venue).Error; err != nil {
		return nil, err
	}

	return &venue, nil
}

// ListActive returns venues that have not been soft-deleted.
func (s *VenueStore) ListActive(ctx context.Context) ([]models.RestaurantVenue, error) {
	var venues []models.RestaurantVenue

	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&venues).Error

	if err != nil {
		return nil, err
	}

	return venues, nil
}

// ByID resolves an active venue. Soft-deleted venues report NotFound.
func (s *VenueStore) ByID(ctx context.Context, id string) (*models.RestaurantVenue, error) {
	var venue models.RestaurantVenue

	err := s.db.WithContext(ctx).
		First(&venue, "id = ? AND active = ?", id, true).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &venue, nil
}

func (s *VenueStore) Update(ctx context.Context, id string, patch VenuePatch) (*models.RestaurantVenue, error) {
	changes := patch.Changes()

	if restaurantID := patch.RestaurantID; restaurantID != nil {
		var restaurant models.Restaurant

		err := s.db.WithContext(ctx).First(&restaurant, "id = ?", *restaurantID).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidation("restaurant_id", "unknown restaurant")
			}
			return nil, err
		}
	}

	if len(changes) > 0 {
		result := s.db.WithContext(ctx).
			Model(&models.RestaurantVenue{}).
			Where("id = ?", id).
			Updates(changes)

		if result.Error != nil {
			return nil, result.Error
		}

		if result.RowsAffected == 0 {
			return nil, apperrors.ErrNotFound
		}
	}

	var venue models.RestaurantVenue

	if err := s.db.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &venue, nil
}

// Deactivate is the venue "delete": the active flag is cleared and the
// row persists, so direct lookups that bypass the active filter still
// find it.
func (s *VenueStore) Deactivate(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).
		Model(&models.RestaurantVenue{}).
		Where("id = ?", id).
		Update("active", false)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
