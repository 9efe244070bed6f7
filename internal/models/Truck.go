package models

import (
	"gorm.io/gorm"
)

type Truck struct {
	gorm.Model
	TruckName    string `json:"truck_name"`
	PlateNumber  string `json:"plate_number" gorm:"uniqueIndex"`
	TruckOwnerID uint   `json:"truck_owner_id" gorm:"index"`
}
