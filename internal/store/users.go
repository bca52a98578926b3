package store

import (
	"context"
	"errors"
	"time"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/apperrors"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// NewUser carries the validated input for user creation. The phone number
// and address become nested owned records created alongside the user.
type NewUser struct {
	Email          string
	PasswordHash   string
	Name           string
	LastName       string
	City           string
	DocumentType   string
	DocumentNumber string
	DateOfBirth    time.Time

	ContactEmail    bool
	ContactSMS      bool
	ContactWhatsApp bool

	Role string

	Phone   string
	Address string
}

const primaryAddressLabel = "Primary Address"

func (s *UserStore) Create(ctx context.Context, in NewUser) (*models.User, error) {
	role := in.Role

	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		ID:              uuid.NewString(),
		Email:           in.Email,
		PasswordHash:    in.PasswordHash,
		Name:            in.Name,
		LastName:        in.LastName,
		City:            in.City,
		DocumentType:    in.DocumentType,
		DocumentNumber:  in.DocumentNumber,
		DateOfBirth:     in.DateOfBirth,
		ContactEmail:    in.ContactEmail,
		ContactSMS:      in.ContactSMS,
		ContactWhatsApp: in.ContactWhatsApp,
		Role:            role,
		PhoneNumbers: []models.PhoneNumber{
			{ID: uuid.NewString(), Phone: in.Phone},
		},
		Addresses: []models.Address{
			{ID: uuid.NewString(), Label: primaryAddressLabel, Address: in.Address, City: in.City},
		},
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	return &user, nil
}

// UserSummary is the compact listing shape: no credentials, no contact
// details.
type UserSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	City     string `json:"city"`
	Role     string `json:"role"`
}

func (s *UserStore) List(ctx context.Context) ([]UserSummary, error) {
	var users []UserSummary

	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "name", "last_name", "city", "role").
		Order("created_at DESC").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

// ByID returns the user with every owned and referenced collection
// loaded, for the detail view.
func (s *UserStore) ByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	err := s.db.WithContext(ctx).
		Preload("PhoneNumbers").
		Preload("Addresses").
		Preload("Orders.Details").
		Preload("Reviews").
		Preload("Reservations").
		Preload("Restaurants").
		First(&user, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Lookup fetches a user row without its collections.
func (s *UserStore) Lookup(ctx context.Context, id string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *UserStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Update applies a partial update. Only fields present in the patch
// change; nested phone/address patches apply per row, scoped to the
// owning user, and rows not mentioned stay untouched.
func (s *UserStore) Update(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		if changes := patch.Changes(); len(changes) > 0 {
			if err := tx.Model(&user).Updates(changes).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.ErrEmailTaken
				}
				return err
			}
		}

		for _, phone := range patch.PhoneNumbers {
			if phone.ID == "" {
				return apperrors.NewValidation("phone_numbers.id", "is required")
			}

			changes := phone.Changes()

			if len(changes) == 0 {
				continue
			}

			result := tx.Model(&models.PhoneNumber{}).
				Where("id = ? AND user_id = ?", phone.ID, id).
				Updates(changes)

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return apperrors.ErrNotFound
			}
		}

		for _, address := range patch.Addresses {
			if address.ID == "" {
				return apperrors.NewValidation("addresses.id", "is required")
			}

			changes := address.Changes()

			if len(changes) == 0 {
				continue
			}

			result := tx.Model(&models.Address{}).
				Where("id = ? AND user_id = ?", address.ID, id).
				Updates(changes)

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return apperrors.ErrNotFound
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return s.ByID(ctx, id)
}
