package models

// Inbound request bodies. Document/image payloads arrive base64-encoded;
// an empty string means "no payload supplied".

type AddDriverRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	TruckID *uint  `json:"truck_id"`
	IdCard  string `json:"id_card"`
	Picture string `json:"picture"`
}

type EditDriverRequest struct {
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	ProfilePicture string `json:"profile_picture"`
}

type AddManagerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	CompanyIDs  []uint `json:"company_ids"`
	ManagerType string `json:"manager_type"`
}

type EditManagerRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ManagerType string `json:"manager_type"`
	CompanyIDs  []uint `json:"company_ids"`
}

type AddTruckOwnerRequest struct {
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required"`
	Address           string `json:"address"`
	BankName          string `json:"bank_name" binding:"required"`
	BankAccountNumber string `json:"bank_account_number" binding:"required"`
	BankAccountName   string `json:"bank_account_name" binding:"required"`
	IdCard            string `json:"id_card"`
	ProfilePicture    string `json:"profile_picture"`
}

type EditTruckOwnerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
}

type AddTruckRequest struct {
	TruckName    string `json:"truck_name"`
	PlateNumber  string `json:"plate_number" binding:"required"`
	TruckOwnerID uint   `json:"truck_owner_id" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
