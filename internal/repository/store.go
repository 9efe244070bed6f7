package repository

import (
	"context"
	"errors"

	"trucki/internal/models"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate indicates a persistence-layer uniqueness violation. It is the
// safety net for the check-then-insert race: the application-level uniqueness
// check and the insert are not atomic as a unit.
var ErrDuplicate = errors.New("record already exists")

// DriverStore owns Driver persistence. FindByID eagerly loads the associated
// truck so read projections never need a second round trip.
type DriverStore interface {
	Create(ctx context.Context, driver *models.Driver) error
	FindByID(ctx context.Context, id uint) (*models.Driver, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Driver, error)
	// FindActiveByEmailOrPhone returns the first active driver matching
	// either value exactly, or ErrNotFound.
	FindActiveByEmailOrPhone(ctx context.Context, email, phone string) (*models.Driver, error)
	List(ctx context.Context) ([]models.Driver, error)
	SearchByName(ctx context.Context, term string) ([]models.Driver, error)
	Update(ctx context.Context, driver *models.Driver) error
}

type ManagerStore interface {
	Create(ctx context.Context, manager *models.Manager) error
	FindByID(ctx context.Context, id uint) (*models.Manager, error)
	List(ctx context.Context) ([]models.Manager, error)
	SearchByName(ctx context.Context, term string) ([]models.Manager, error)
	Update(ctx context.Context, manager *models.Manager) error
	// ReplaceCompanies swaps the manager's company associations for the
	// given set.
	ReplaceCompanies(ctx context.Context, manager *models.Manager, companies []models.Company) error
}

// TruckOwnerStore owns TruckOwner rows together with their embedded bank
// details. FindByID eagerly loads trucks and bank details.
type TruckOwnerStore interface {
	Create(ctx context.Context, owner *models.TruckOwner) error
	FindByID(ctx context.Context, id uint) (*models.TruckOwner, error)
	List(ctx context.Context) ([]models.TruckOwner, error)
	SearchByName(ctx context.Context, term string) ([]models.TruckOwner, error)
	Update(ctx context.Context, owner *models.TruckOwner) error
	// Delete hard-removes the owner and its bank details. Owned trucks are
	// left in place with a dangling owner id.
	Delete(ctx context.Context, owner *models.TruckOwner) error
}

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) error
	FindByIDs(ctx context.Context, ids []uint) ([]models.Company, error)
	List(ctx context.Context) ([]models.Company, error)
}

type TruckStore interface {
	Create(ctx context.Context, truck *models.Truck) error
	List(ctx context.Context) ([]models.Truck, error)
}
