package models

import (
	"strconv"
	"time"
)

// Response shapes and their projection functions. Mapping is deliberately
// explicit per (entity, shape) pair so it stays auditable.

type DriverSummaryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	EmailAddress string `json:"email_address"`
	TruckID      *uint  `json:"truck_id,omitempty"`
	IsActive     bool   `json:"is_active"`
}

type DriverResponse struct {
	DriverSummaryResponse
	IdentityCardURL   string         `json:"identity_card_url"`
	ProfilePictureURL string         `json:"profile_picture_url"`
	Truck             *TruckResponse `json:"truck,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type ManagerResponse struct {
	ID           uint              `json:"id"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	EmailAddress string            `json:"email_address"`
	ManagerType  string            `json:"manager_type"`
	IsActive     bool              `json:"is_active"`
	Companies    []CompanyResponse `json:"companies"`
}

type TruckOwnerSummaryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	EmailAddress string `json:"email_address"`
	Address      string `json:"address"`
}

type TruckOwnerResponse struct {
	TruckOwnerSummaryResponse
	IdentityCardURL   string               `json:"identity_card_url"`
	ProfilePictureURL string               `json:"profile_picture_url"`
	NoOfTrucks        string               `json:"no_of_trucks"`
	Trucks            []TruckResponse      `json:"trucks"`
	BankDetails       *BankDetailsResponse `json:"bank_details,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type BankDetailsResponse struct {
	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
}

type TruckResponse struct {
	ID           uint   `json:"id"`
	TruckName    string `json:"truck_name"`
	PlateNumber  string `json:"plate_number"`
	TruckOwnerID uint   `json:"truck_owner_id"`
}

type CompanyResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func ToDriverSummaryResponse(d Driver) DriverSummaryResponse {
	return DriverSummaryResponse{
		ID:           d.ID,
		Name:         d.Name,
		Phone:        d.Phone,
		EmailAddress: d.EmailAddress,
		TruckID:      d.TruckID,
		IsActive:     d.IsActive,
	}
}

func ToDriverSummaryResponses(drivers []Driver) []DriverSummaryResponse {
	out := make([]DriverSummaryResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, ToDriverSummaryResponse(d))
	}
	return out
}

func ToDriverResponse(d Driver) DriverResponse {
	resp := DriverResponse{
		DriverSummaryResponse: ToDriverSummaryResponse(d),
		IdentityCardURL:       d.IdentityCardURL,
		ProfilePictureURL:     d.ProfilePictureURL,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
	if d.Truck != nil {
		truck := ToTruckResponse(*d.Truck)
		resp.Truck = &truck
	}
	return resp
}

func ToManagerResponse(m Manager) ManagerResponse {
	return ManagerResponse{
		ID:           m.ID,
		Name:         m.Name,
		Phone:        m.Phone,
		EmailAddress: m.EmailAddress,
		ManagerType:  m.ManagerType,
		IsActive:     m.IsActive,
		Companies:    ToCompanyResponses(m.Companies),
	}
}

func ToManagerResponses(managers []Manager) []ManagerResponse {
	out := make([]ManagerResponse, 0, len(managers))
	for _, m := range managers {
		out = append(out, ToManagerResponse(m))
	}
	return out
}

func ToTruckOwnerSummaryResponse(o TruckOwner) TruckOwnerSummaryResponse {
	return TruckOwnerSummaryResponse{
		ID:           o.ID,
		Name:         o.Name,
		Phone:        o.Phone,
		EmailAddress: o.EmailAddress,
		Address:      o.Address,
	}
}

func ToTruckOwnerSummaryResponses(owners []TruckOwner) []TruckOwnerSummaryResponse {
	out := make([]TruckOwnerSummaryResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, ToTruckOwnerSummaryResponse(o))
	}
	return out
}

func ToTruckOwnerResponse(o TruckOwner) TruckOwnerResponse {
	bank := BankDetailsResponse{
		BankName:          o.BankDetails.BankName,
		BankAccountNumber: o.BankDetails.BankAccountNumber,
		BankAccountName:   o.BankDetails.BankAccountName,
	}
	return TruckOwnerResponse{
		TruckOwnerSummaryResponse: ToTruckOwnerSummaryResponse(o),
		IdentityCardURL:           o.IdentityCardURL,
		ProfilePictureURL:         o.ProfilePictureURL,
		NoOfTrucks:                strconv.Itoa(len(o.Trucks)),
		Trucks:                    ToTruckResponses(o.Trucks),
		BankDetails:               &bank,
		CreatedAt:                 o.CreatedAt,
		UpdatedAt:                 o.UpdatedAt,
	}
}

func ToTruckResponse(t Truck) TruckResponse {
	return TruckResponse{
		ID:           t.ID,
		TruckName:    t.TruckName,
		PlateNumber:  t.PlateNumber,
		TruckOwnerID: t.TruckOwnerID,
	}
}

func ToTruckResponses(trucks []Truck) []TruckResponse {
	out := make([]TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, ToTruckResponse(t))
	}
	return out
}

func ToCompanyResponses(companies []Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, CompanyResponse{ID: c.ID, Name: c.Name, Location: c.Location})
	}
	return out
}

func ToUserResponse(u User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
