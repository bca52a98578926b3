package models

import "time"

const (
	RoleUser            = "user"
	RoleAdmin           = "admin"
	RoleRestaurantAdmin = "restaurant_admin"
)

type User struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"not null"`

	Name           string    `json:"name" gorm:"not null"`
	LastName       string    `json:"last_name"`
	City           string    `json:"city"`
	DocumentType   string    `json:"document_type"`
	DocumentNumber string    `json:"document_number"`
	DateOfBirth    time.Time `json:"date_of_birth"`

	ContactEmail    bool `json:"contact_email"`
	ContactSMS      bool `json:"contact_sms"`
	ContactWhatsApp bool `json:"contact_whatsapp" gorm:"column:contact_whatsapp"`

	Role string `json:"role" gorm:"index;not null;default:user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	PhoneNumbers []PhoneNumber `json:"phone_numbers,omitempty" gorm:"foreignKey:UserID"`
	Addresses    []Address     `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	Orders       []Order       `json:"orders,omitempty" gorm:"foreignKey:UserID"`
	Reviews      []Review      `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:UserID"`
	Restaurants  []Restaurant  `json:"restaurants,omitempty" gorm:"foreignKey:OwnerID"`
}

type PhoneNumber struct {
	ID     string `json:"id" gorm:"primaryKey"`
	Phone  string `json:"phone" gorm:"not null"`
	UserID string `json:"user_id" gorm:"index;not null"`
}

type Address struct {
	ID      string `json:"id" gorm:"primaryKey"`
	Label   string `json:"label" gorm:"not null"`
	Address string `json:"address" gorm:"not null"`
	City    string `json:"city"`
	UserID  string `json:"user_id" gorm:"index;not null"`
}
