package services

import (
	"context"
	"errors"
	"net/http"

	logrus "github.com/sirupsen/logrus"

	"trucki/internal/models"
	"trucki/internal/repository"
)

// ManagerService orchestrates the manager lifecycle. Managers carry a type
// tag that decides the provisioned login role; company associations are
// attached by id only.
type ManagerService struct {
	managers  repository.ManagerStore
	companies repository.CompanyStore
	accounts  CredentialProvisioner
}

func NewManagerService(managers repository.ManagerStore, companies repository.CompanyStore,
	accounts CredentialProvisioner) *ManagerService {
	return &ManagerService{managers: managers, companies: companies, accounts: accounts}
}

func normalizeManagerType(managerType string) (string, bool) {
	switch managerType {
	case "", models.ManagerTypeStandard:
		return models.ManagerTypeStandard, true
	case models.ManagerTypeFinance:
		return models.ManagerTypeFinance, true
	default:
		return "", false
	}
}

func (s *ManagerService) AddManager(ctx context.Context, req models.AddManagerRequest) *models.ApiResponse[string] {
	managerType, ok := normalizeManagerType(req.ManagerType)
	if !ok {
		return models.Failure[string](http.StatusBadRequest, "Invalid manager type")
	}

	companies, err := s.companies.FindByIDs(ctx, req.CompanyIDs)
	if err != nil {
		logrus.WithError(err).Error("company lookup failed")
		return models.Failure[string](http.StatusInternalServerError, "An error occurred while creating the manager")
	}

	manager := models.Manager{
		Name:         req.Name,
		Phone:        req.Phone,
		EmailAddress: req.Email,
		ManagerType:  managerType,
		Companies:    companies,
		IsActive:     true,
	}

	creds, err := s.accounts.Provision(ctx, req.Name, req.Email, manager.LoginRole())
	if err != nil {
		logrus.WithError(err).WithField("email", req.Email).Error("credential provisioning failed")
		return models.Failure[string](http.StatusBadRequest, "An error occurred while creating the manager")
	}
	manager.UserID = creds.UserID

	if err := s.managers.Create(ctx, &manager); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Failure[string](http.StatusBadRequest, "Email address already exists")
		}
		logrus.WithError(err).Error("manager persist failed after provisioning")
		return models.Failure[string](http.StatusInternalServerError, "An error occurred while creating the manager")
	}

	return models.Success(http.StatusCreated, "Manager created successfully", creds.RawPassword)
}

func (s *ManagerService) EditManager(ctx context.Context, id uint, req models.EditManagerRequest) *models.ApiResponse[bool] {
	manager, err := s.managers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[bool](http.StatusNotFound, "Manager not found")
		}
		logrus.WithError(err).Error("manager lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the manager")
	}

	managerType, ok := normalizeManagerType(req.ManagerType)
	if !ok {
		return models.Failure[bool](http.StatusBadRequest, "Invalid manager type")
	}

	manager.Name = req.Name
	manager.Phone = req.Phone
	manager.ManagerType = managerType

	companies, err := s.companies.FindByIDs(ctx, req.CompanyIDs)
	if err != nil {
		logrus.WithError(err).Error("company lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the manager")
	}
	if err := s.managers.ReplaceCompanies(ctx, manager, companies); err != nil {
		logrus.WithError(err).Error("company association update failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the manager")
	}

	if err := s.managers.Update(ctx, manager); err != nil {
		logrus.WithError(err).Error("manager update failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the manager")
	}
	return models.Success(http.StatusOK, "Manager updated successfully", true)
}

func (s *ManagerService) DeactivateManager(ctx context.Context, id uint) *models.ApiResponse[bool] {
	manager, err := s.managers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[bool](http.StatusNotFound, "Manager not found")
		}
		logrus.WithError(err).Error("manager lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while deactivating the manager")
	}

	manager.IsActive = false
	if err := s.managers.Update(ctx, manager); err != nil {
		logrus.WithError(err).Error("manager deactivation failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while deactivating the manager")
	}
	return models.Success(http.StatusOK, "Manager deactivated successfully", true)
}

func (s *ManagerService) GetAllManagers(ctx context.Context) *models.ApiResponse[[]models.ManagerResponse] {
	managers, err := s.managers.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("manager list failed")
		return models.Failure[[]models.ManagerResponse](http.StatusInternalServerError, "An error occurred while retrieving managers")
	}
	return models.Success(http.StatusOK, "Managers retrieved successfully", models.ToManagerResponses(managers))
}

func (s *ManagerService) GetManagerByID(ctx context.Context, id uint) *models.ApiResponse[models.ManagerResponse] {
	manager, err := s.managers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[models.ManagerResponse](http.StatusNotFound, "Manager not found")
		}
		logrus.WithError(err).Error("manager lookup failed")
		return models.Failure[models.ManagerResponse](http.StatusInternalServerError, "An error occurred while retrieving the manager")
	}
	return models.Success(http.StatusOK, "Manager retrieved successfully", models.ToManagerResponse(*manager))
}

func (s *ManagerService) SearchManagers(ctx context.Context, term string) *models.ApiResponse[[]models.ManagerResponse] {
	var (
		managers []models.Manager
		err      error
	)
	if matchesAll(term) {
		managers, err = s.managers.List(ctx)
	} else {
		managers, err = s.managers.SearchByName(ctx, term)
	}
	if err != nil {
		logrus.WithError(err).Error("manager search failed")
		return models.Failure[[]models.ManagerResponse](http.StatusInternalServerError, "An error occurred while searching managers")
	}
	if len(managers) == 0 {
		return models.FailureWith(http.StatusNotFound, "No manager found", []models.ManagerResponse{})
	}
	return models.Success(http.StatusOK, "Managers successfully retrieved", models.ToManagerResponses(managers))
}
