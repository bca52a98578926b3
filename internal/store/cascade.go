package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/apperrors"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/models"
	"gorm.io/gorm"
)

// cleanupStep removes one class of records owned by a user. The steps
// run in order inside a single transaction; each table holds a foreign
// key to the user (or, for order details, to a record a later statement
// removes), so reordering any pair risks a constraint violation.
type cleanupStep struct {
	name string
	run  func(tx *gorm.DB, userID string) error
}

var userCleanupSteps = []cleanupStep{
	{"addresses", func(tx *gorm.DB, userID string) error {
		return tx.Where("user_id = ?", userID).Delete(&models.Address{}).Error
	}},
	{"phone_numbers", func(tx *gorm.DB, userID string) error {
		return tx.Where("user_id = ?", userID).Delete(&models.PhoneNumber{}).Error
	}},
	{"orders", deleteUserOrders},
	{"reviews", func(tx *gorm.DB, userID string) error {
		return tx.Where("user_id = ?", userID).Delete(&models.Review{}).Error
	}},
	{"reservations", func(tx *gorm.DB, userID string) error {
		return tx.Where("user_id = ?", userID).Delete(&models.Reservation{}).Error
	}},
}

// deleteUserOrders removes each order's line items before the order
// itself, since order_details references orders.
func deleteUserOrders(tx *gorm.DB, userID string) error {
	var orders []models.Order

	if err := tx.Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return err
	}

	for _, order := range orders {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.Order{}, "id = ?", order.ID).Error; err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a user and every record that hangs off it. Only users
// with the plain "user" role may be deleted; admins and restaurant
// admins are refused before anything is touched. The whole sequence is
// one transaction: a failure at any step rolls back every prior delete.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User

		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return err
		}

		if user.Role != models.RoleUser {
			return apperrors.ErrForbidden
		}

		for _, step := range userCleanupSteps {
			if err := step.run(tx, id); err != nil {
				return fmt.Errorf("deleting %s: %w", step.name, err)
			}
		}

		return tx.Delete(&user).Error
	})
}
