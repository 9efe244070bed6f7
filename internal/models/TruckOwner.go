package models

import (
	"gorm.io/gorm"
)

// TruckOwner does not log in in this slice, so no UserID link exists.
// BankDetails is created together with the owner and has no lifecycle of
// its own.
type TruckOwner struct {
	gorm.Model
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	EmailAddress      string `json:"email_address"`
	Address           string `json:"address"`
	IdentityCardURL   string `json:"identity_card_url"`
	ProfilePictureURL string `json:"profile_picture_url"`

	BankDetailsID uint        `json:"bank_details_id"`
	BankDetails   BankDetails `gorm:"foreignKey:BankDetailsID" json:"bank_details"`

	// Back-reference collection, lookup only.
	Trucks []Truck `gorm:"foreignKey:TruckOwnerID" json:"trucks,omitempty"`
}
