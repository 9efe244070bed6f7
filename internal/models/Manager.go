package models

import (
	"gorm.io/gorm"
)

// Manager types. The type tag decides which login role is provisioned and
// which report endpoints the authorization layer later opens up.
const (
	ManagerTypeStandard = "standard"
	ManagerTypeFinance  = "finance"
)

type Manager struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	EmailAddress string `json:"email_address" gorm:"uniqueIndex"`
	ManagerType  string `json:"manager_type"`

	// Companies the manager oversees. Association by id only, not ownership.
	Companies []Company `gorm:"many2many:manager_companies" json:"companies,omitempty"`

	IsActive bool `json:"is_active" gorm:"default:true"`
}

// LoginRole maps the manager type to the role bound to the provisioned login.
func (m *Manager) LoginRole() string {
	if m.ManagerType == ManagerTypeFinance {
		return "finance"
	}
	return "manager"
}
