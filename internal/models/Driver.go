package models

import (
	"gorm.io/gorm"
)

// Driver is an onboarded driver profile. Login credentials live on the
// linked User record, never here.
type Driver struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"index"` // Foreign key to User (login identity)
	Name   string `json:"name"`
	// Phone and email are unique among active drivers only: deactivation
	// releases the identity for re-onboarding, so the indexes are partial.
	Phone             string `json:"phone" gorm:"index:uidx_drivers_phone,unique,where:is_active"`
	EmailAddress      string `json:"email_address" gorm:"index:uidx_drivers_email_address,unique,where:is_active"`
	TruckID           *uint  `json:"truck_id"` // Weak reference: lookup only, no ownership
	Truck             *Truck `gorm:"foreignKey:TruckID" json:"truck,omitempty"`
	IdentityCardURL   string `json:"identity_card_url"`
	ProfilePictureURL string `json:"profile_picture_url"`
	// IsActive=false is terminal; there is no reactivation operation.
	IsActive bool `json:"is_active" gorm:"default:true"`
}
