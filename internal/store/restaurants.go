package store

import (
	"context"
	"errors"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/apperrors"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestaurantStore struct {
	db *gorm.DB
}

func NewRestaurantStore(db *gorm.DB) *RestaurantStore {
	return &RestaurantStore{db: db}
}

type NewRestaurant struct {
	Name    string
	Path    string
	Cuisine string
	OwnerID *string
}

func (s *RestaurantStore) Create(ctx context.Context, in NewRestaurant) (*models.Restaurant, error) {
	restaurant := models.Restaurant{
		ID:      uuid.NewString(),
		Name:    in.Name,
		Path:    in.Path,
		Cuisine: in.Cuisine,
		OwnerID: in.OwnerID,
	}

	if err := s.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewValidation("path", "already in use")
		}
		return nil, err
	}

	return &restaurant, nil
}

func (s *RestaurantStore) List(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	if err := s.db.WithContext(ctx).Order("name ASC").Find(&restaurants).Error; err != nil {
		return nil, err
	}

	return restaurants, nil
}

func (s *RestaurantStore) ByID(ctx context.Context, id string) (*models.Restaurant, error) {
	var restaurant models.Restaurant

	err := s.db.WithContext(ctx).
		Preload("Venues", "active = ?", true).
		First(&restaurant, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &restaurant, nil
}

// ByPath resolves a restaurant by its URL slug.
func (s *RestaurantStore) ByPath(ctx context.Context, path string) (*models.Restaurant, error) {
	var restaurant models.Restaurant

	err := s.db.WithContext(ctx).
		Preload("Venues", "active = ?", true).
		First(&restaurant, "path = ?", path).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &restaurant, nil
}

func (s *RestaurantStore) Update(ctx context.Context, id string, patch RestaurantPatch) (*models.Restaurant, error) {
	changes := patch.Changes()

	if len(changes) > 0 {
		result := s.db.WithContext(ctx).
			Model(&models.Restaurant{}).
			Where("id = ?", id).
			Updates(changes)

		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
				return nil, apperrors.NewValidation("path", "already in use")
			}
			return nil, result.Error
		}

		if result.RowsAffected == 0 {
			return nil, apperrors.ErrNotFound
		}
	}

	return s.ByID(ctx, id)
}

// UpdateRating sets the aggregate rating for a restaurant.
func (s *RestaurantStore) UpdateRating(ctx context.Context, id string, rating float64) (*models.Restaurant, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Restaurant{}).
		Where("id = ?", id).
		Update("rating", rating)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, apperrors.ErrNotFound
	}

	return s.ByID(ctx, id)
}

func (s *RestaurantStore) Delete(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Restaurant{}, "id = ?", id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
