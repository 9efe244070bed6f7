package models

import "gorm.io/gorm"

// User is a login identity. One is provisioned for every driver and
// manager at onboarding; truck owners do not log in.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`    // bcrypt hash, never the raw password
	Role     string `json:"role"` // "admin", "driver", "manager", "finance"
}
