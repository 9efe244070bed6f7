package models

import (
	"gorm.io/gorm"
)

// Company is a client business a manager can be associated with.
type Company struct {
	gorm.Model
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}
