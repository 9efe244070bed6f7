package models

import (
	"gorm.io/gorm"
)

type BankDetails struct {
	gorm.Model
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
}
