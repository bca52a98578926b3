package models

import "time"

type Restaurant struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Path      string    `json:"path" gorm:"uniqueIndex;not null"`
	Cuisine   string    `json:"cuisine" gorm:"index"`
	Rating    float64   `json:"rating"`
	OwnerID   *string   `json:"owner_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Venues []RestaurantVenue `json:"venues,omitempty" gorm:"foreignKey:RestaurantID"`
}
