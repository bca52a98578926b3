package store

import "time"

// Patch structs describe partial updates. Every field is a pointer: a nil
// pointer means the caller did not supply the field, a non-nil pointer is
// applied even when it points at a zero value. This keeps "clear this
// flag to false" distinct from "leave it alone".

type UserPatch struct {
	Email           *string
	PasswordHash    *string
	Name            *string
	LastName        *string
	City            *string
	DocumentType    *string
	DocumentNumber  *string
	DateOfBirth     *time.Time
	ContactEmail    *bool
	ContactSMS      *bool
	ContactWhatsApp *bool

	PhoneNumbers []PhonePatch
	Addresses    []AddressPatch
}

func (p UserPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})

	put(changes, "email", p.Email)
	put(changes, "password_hash", p.PasswordHash)
	put(changes, "name", p.Name)
	put(changes, "last_name", p.LastName)
	put(changes, "city", p.City)
	put(changes, "document_type", p.DocumentType)
	put(changes, "document_number", p.DocumentNumber)
	put(changes, "date_of_birth", p.DateOfBirth)
	put(changes, "contact_email", p.ContactEmail)
	put(changes, "contact_sms", p.ContactSMS)
	put(changes, "contact_whatsapp", p.ContactWhatsApp)

	return changes
}

// PhonePatch updates one phone number row owned by the user being
// patched. Rows not mentioned are left unmodified.
type PhonePatch struct {
	ID    string
	Phone *string
}

func (p PhonePatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	put(changes, "phone", p.Phone)
	return changes
}

type AddressPatch struct {
	ID      string
	Label   *string
	Address *string
	City    *string
}

func (p AddressPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	put(changes, "label", p.Label)
	put(changes, "address", p.Address)
	put(changes, "city", p.City)
	return changes
}

type VenuePatch struct {
	Name         *string
	Address      *string
	City         *string
	Photo        *string
	Phone        *string
	OpenHour     *string
	CloseHour    *string
	RestaurantID *string
}

func (p VenuePatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})

	put(changes, "name", p.Name)
	put(changes, "address", p.Address)
	put(changes, "city", p.City)
	put(changes, "photo", p.Photo)
	put(changes, "phone", p.Phone)
	put(changes, "open_hour", p.OpenHour)
	put(changes, "close_hour", p.CloseHour)
	put(changes, "restaurant_id", p.RestaurantID)

	return changes
}

type RestaurantPatch struct {
	Name    *string
	Path    *string
	Cuisine *string
	Rating  *float64
	OwnerID *string
}

func (p RestaurantPatch) Changes() map[string]interface{} {
	changes := make(map[string]interface{})

	put(changes, "name", p.Name)
	put(changes, "path", p.Path)
	put(changes, "cuisine", p.Cuisine)
	put(changes, "rating", p.Rating)
	put(changes, "owner_id", p.OwnerID)

	return changes
}

func put[T any](changes map[string]interface{}, column string, value *T) {
	if value != nil {
		changes[column] = *value
	}
}
