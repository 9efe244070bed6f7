package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"trucki/internal/models"
)

// translateErr maps gorm/postgres errors onto the store sentinels.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

// --- Driver ---

type GormDriverStore struct {
	db *gorm.DB
}

func NewGormDriverStore(db *gorm.DB) *GormDriverStore {
	return &GormDriverStore{db: db}
}

func (s *GormDriverStore) Create(ctx context.Context, driver *models.Driver) error {
	return translateErr(s.db.WithContext(ctx).Create(driver).Error)
}

func (s *GormDriverStore) FindByID(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	err := s.db.WithContext(ctx).Preload("Truck").First(&driver, id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &driver, nil
}

func (s *GormDriverStore) FindByUserID(ctx context.Context, userID uint) (*models.Driver, error) {
	var driver models.Driver
	err := s.db.WithContext(ctx).Preload("Truck").
		Where("user_id = ?", userID).First(&driver).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &driver, nil
}

func (s *GormDriverStore) FindActiveByEmailOrPhone(ctx context.Context, email, phone string) (*models.Driver, error) {
	var driver models.Driver
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("email_address = ? OR phone = ?", email, phone).
		First(&driver).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &driver, nil
}

func (s *GormDriverStore) List(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := s.db.WithContext(ctx).Find(&drivers).Error; err != nil {
		return nil, translateErr(err)
	}
	return drivers, nil
}

func (s *GormDriverStore) SearchByName(ctx context.Context, term string) ([]models.Driver, error) {
	var drivers []models.Driver
	pattern := "%" + strings.ToLower(term) + "%"
	if err := s.db.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern).Find(&drivers).Error; err != nil {
		return nil, translateErr(err)
	}
	return drivers, nil
}

func (s *GormDriverStore) Update(ctx context.Context, driver *models.Driver) error {
	return translateErr(s.db.WithContext(ctx).Save(driver).Error)
}

// --- Manager ---

type GormManagerStore struct {
	db *gorm.DB
}

func NewGormManagerStore(db *gorm.DB) *GormManagerStore {
	return &GormManagerStore{db: db}
}

func (s *GormManagerStore) Create(ctx context.Context, manager *models.Manager) error {
	return translateErr(s.db.WithContext(ctx).Create(manager).Error)
}

func (s *GormManagerStore) FindByID(ctx context.Context, id uint) (*models.Manager, error) {
	var manager models.Manager
	err := s.db.WithContext(ctx).Preload("Companies").First(&manager, id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &manager, nil
}

func (s *GormManagerStore) List(ctx context.Context) ([]models.Manager, error) {
	var managers []models.Manager
	if err := s.db.WithContext(ctx).Preload("Companies").Find(&managers).Error; err != nil {
		return nil, translateErr(err)
	}
	return managers, nil
}

func (s *GormManagerStore) SearchByName(ctx context.Context, term string) ([]models.Manager, error) {
	var managers []models.Manager
	pattern := "%" + strings.ToLower(term) + "%"
	if err := s.db.WithContext(ctx).Preload("Companies").
		Where("LOWER(name) LIKE ?", pattern).Find(&managers).Error; err != nil {
		return nil, translateErr(err)
	}
	return managers, nil
}

func (s *GormManagerStore) Update(ctx context.Context, manager *models.Manager) error {
	return translateErr(s.db.WithContext(ctx).Save(manager).Error)
}

func (s *GormManagerStore) ReplaceCompanies(ctx context.Context, manager *models.Manager, companies []models.Company) error {
	err := s.db.WithContext(ctx).Model(manager).Association("Companies").Replace(companies)
	if err != nil {
		return translateErr(err)
	}
	manager.Companies = companies
	return nil
}

// --- TruckOwner ---

type GormTruckOwnerStore struct {
	db *gorm.DB
}

func NewGormTruckOwnerStore(db *gorm.DB) *GormTruckOwnerStore {
	return &GormTruckOwnerStore{db: db}
}

func (s *GormTruckOwnerStore) Create(ctx context.Context, owner *models.TruckOwner) error {
	// Creating the owner also creates the associated BankDetails row.
	return translateErr(s.db.WithContext(ctx).Create(owner).Error)
}

func (s *GormTruckOwnerStore) FindByID(ctx context.Context, id uint) (*models.TruckOwner, error) {
	var owner models.TruckOwner
	err := s.db.WithContext(ctx).
		Preload("Trucks").
		Preload("BankDetails").
		First(&owner, id).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &owner, nil
}

func (s *GormTruckOwnerStore) List(ctx context.Context) ([]models.TruckOwner, error) {
	var owners []models.TruckOwner
	if err := s.db.WithContext(ctx).Find(&owners).Error; err != nil {
		return nil, translateErr(err)
	}
	return owners, nil
}

func (s *GormTruckOwnerStore) SearchByName(ctx context.Context, term string) ([]models.TruckOwner, error) {
	var owners []models.TruckOwner
	pattern := "%" + strings.ToLower(term) + "%"
	if err := s.db.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern).Find(&owners).Error; err != nil {
		return nil, translateErr(err)
	}
	return owners, nil
}

func (s *GormTruckOwnerStore) Update(ctx context.Context, owner *models.TruckOwner) error {
	return translateErr(s.db.WithContext(ctx).Save(owner).Error)
}

// Delete removes the owner row and its bank details for good. Unscoped
// bypasses gorm's DeletedAt soft delete; owner removal is hard, unlike the
// driver/manager deactivation flows.
func (s *GormTruckOwnerStore) Delete(ctx context.Context, owner *models.TruckOwner) error {
	if err := s.db.WithContext(ctx).Unscoped().Delete(owner).Error; err != nil {
		return translateErr(err)
	}
	if owner.BankDetailsID != 0 {
		return translateErr(s.db.WithContext(ctx).Unscoped().Delete(&models.BankDetails{}, owner.BankDetailsID).Error)
	}
	return nil
}

// --- User ---

type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	return translateErr(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

// --- Company ---

type GormCompanyStore struct {
	db *gorm.DB
}

func NewGormCompanyStore(db *gorm.DB) *GormCompanyStore {
	return &GormCompanyStore{db: db}
}

func (s *GormCompanyStore) Create(ctx context.Context, company *models.Company) error {
	return translateErr(s.db.WithContext(ctx).Create(company).Error)
}

func (s *GormCompanyStore) FindByIDs(ctx context.Context, ids []uint) ([]models.Company, error) {
	var companies []models.Company
	if len(ids) == 0 {
		return companies, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error; err != nil {
		return nil, translateErr(err)
	}
	return companies, nil
}

func (s *GormCompanyStore) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, translateErr(err)
	}
	return companies, nil
}

// --- Truck ---

type GormTruckStore struct {
	db *gorm.DB
}

func NewGormTruckStore(db *gorm.DB) *GormTruckStore {
	return &GormTruckStore{db: db}
}

func (s *GormTruckStore) Create(ctx context.Context, truck *models.Truck) error {
	return translateErr(s.db.WithContext(ctx).Create(truck).Error)
}

func (s *GormTruckStore) List(ctx context.Context) ([]models.Truck, error) {
	var trucks []models.Truck
	if err := s.db.WithContext(ctx).Find(&trucks).Error; err != nil {
		return nil, translateErr(err)
	}
	return trucks, nil
}
