package models

import "time"

type Review struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	UserID       string    `json:"user_id" gorm:"index;not null"`
	RestaurantID string    `json:"restaurant_id" gorm:"index"`
	Rating       int       `json:"rating" gorm:"not null"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type Reservation struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	VenueID    string    `json:"venue_id" gorm:"index"`
	PartySize  int       `json:"party_size"`
	ReservedAt time.Time `json:"reserved_at"`
	CreatedAt  time.Time `json:"created_at"`
}
