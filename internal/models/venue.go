package models

import "time"

// RestaurantVenue is a physical location of a restaurant. Deletion is
// logical: Active is cleared and the row persists.
type RestaurantVenue struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	Photo        string    `json:"photo"`
	Phone        string    `json:"phone"`
	OpenHour     string    `json:"open_hour"`
	CloseHour    string    `json:"close_hour"`
	Active       bool      `json:"active" gorm:"not null;default:true"`
	RestaurantID string    `json:"restaurant_id" gorm:"index;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
