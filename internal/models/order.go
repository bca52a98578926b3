package models

import "time"

type Order struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	VenueID   string    `json:"venue_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Details []OrderDetail `json:"details,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderDetail struct {
	ID               string `json:"id" gorm:"primaryKey"`
	OrderID          string `json:"order_id" gorm:"index;not null"`
	ItemName         string `json:"item_name" gorm:"not null"`
	Quantity         int64  `json:"quantity" gorm:"not null"`
	UnitPriceInCents int64  `json:"unit_price_in_cents" gorm:"not null"`
}
