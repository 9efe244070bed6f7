package services

import (
	"context"
	"errors"
	"net/http"

	logrus "github.com/sirupsen/logrus"

	"trucki/internal/models"
	"trucki/internal/repository"
)

// TruckOwnerService orchestrates the truck owner lifecycle. Owners do not
// log in, so no credential is provisioned; bank details are created
// together with the owner and removed with it. Removal is a hard delete,
// unlike drivers and managers.
type TruckOwnerService struct {
	owners repository.TruckOwnerStore
	assets AssetStore
}

func NewTruckOwnerService(owners repository.TruckOwnerStore, assets AssetStore) *TruckOwnerService {
	return &TruckOwnerService{owners: owners, assets: assets}
}

func (s *TruckOwnerService) CreateTruckOwner(ctx context.Context, req models.AddTruckOwnerRequest) *models.ApiResponse[bool] {
	idCardURL, err := uploadAsset(ctx, s.assets, req.IdCard, req.Name+"userIdCard")
	if err != nil {
		logrus.WithError(err).Error("id card upload failed")
		return models.Failure[bool](http.StatusBadRequest, "Invalid identity card payload")
	}
	pictureURL, err := uploadAsset(ctx, s.assets, req.ProfilePicture, req.Name+"userProfilePicture")
	if err != nil {
		logrus.WithError(err).Error("profile picture upload failed")
		return models.Failure[bool](http.StatusBadRequest, "Invalid profile picture payload")
	}

	owner := models.TruckOwner{
		Name:              req.Name,
		Phone:             req.Phone,
		EmailAddress:      req.Email,
		Address:           req.Address,
		IdentityCardURL:   idCardURL,
		ProfilePictureURL: pictureURL,
		BankDetails: models.BankDetails{
			BankName:          req.BankName,
			BankAccountNumber: req.BankAccountNumber,
			BankAccountName:   req.BankAccountName,
		},
	}
	if err := s.owners.Create(ctx, &owner); err != nil {
		logrus.WithError(err).Error("truck owner persist failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while creating the truck owner")
	}
	return models.Success(http.StatusCreated, "Truck owner created successfully", true)
}

func (s *TruckOwnerService) EditTruckOwner(ctx context.Context, id uint, req models.EditTruckOwnerRequest) *models.ApiResponse[bool] {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[bool](http.StatusNotFound, "Truck owner not found")
		}
		logrus.WithError(err).Error("truck owner lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the truck owner")
	}

	owner.Name = req.Name
	owner.EmailAddress = req.Email
	owner.Phone = req.Phone
	owner.Address = req.Address

	if err := s.owners.Update(ctx, owner); err != nil {
		logrus.WithError(err).Error("truck owner update failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the truck owner")
	}
	return models.Success(http.StatusOK, "Truck owner updated successfully", true)
}

// DeleteTruckOwner hard-removes the owner and its bank details. Owned
// trucks are not cascaded and keep a dangling owner id.
func (s *TruckOwnerService) DeleteTruckOwner(ctx context.Context, id uint) *models.ApiResponse[bool] {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[bool](http.StatusNotFound, "Truck owner not found")
		}
		logrus.WithError(err).Error("truck owner lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while deleting the truck owner")
	}

	if err := s.owners.Delete(ctx, owner); err != nil {
		logrus.WithError(err).Error("truck owner delete failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while deleting the truck owner")
	}
	return models.Success(http.StatusOK, "Truck owner deleted successfully", true)
}

func (s *TruckOwnerService) GetTruckOwnerByID(ctx context.Context, id uint) *models.ApiResponse[models.TruckOwnerResponse] {
	owner, err := s.owners.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[models.TruckOwnerResponse](http.StatusNotFound, "Truck owner not found")
		}
		logrus.WithError(err).Error("truck owner lookup failed")
		return models.Failure[models.TruckOwnerResponse](http.StatusInternalServerError, "An error occurred while retrieving the truck owner")
	}
	return models.Success(http.StatusOK, "Success", models.ToTruckOwnerResponse(*owner))
}

func (s *TruckOwnerService) GetAllTruckOwners(ctx context.Context) *models.ApiResponse[[]models.TruckOwnerSummaryResponse] {
	owners, err := s.owners.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("truck owner list failed")
		return models.Failure[[]models.TruckOwnerSummaryResponse](http.StatusInternalServerError, "An error occurred while retrieving truck owners")
	}
	return models.Success(http.StatusOK, "Truck owners retrieved successfully", models.ToTruckOwnerSummaryResponses(owners))
}

func (s *TruckOwnerService) SearchTruckOwners(ctx context.Context, term string) *models.ApiResponse[[]models.TruckOwnerSummaryResponse] {
	var (
		owners []models.TruckOwner
		err    error
	)
	if matchesAll(term) {
		owners, err = s.owners.List(ctx)
	} else {
		owners, err = s.owners.SearchByName(ctx, term)
	}
	if err != nil {
		logrus.WithError(err).Error("truck owner search failed")
		return models.Failure[[]models.TruckOwnerSummaryResponse](http.StatusInternalServerError, "An error occurred while searching truck owners")
	}
	if len(owners) == 0 {
		return models.FailureWith(http.StatusNotFound, "No Truck Owner found", []models.TruckOwnerSummaryResponse{})
	}
	return models.Success(http.StatusOK, "Truck Owner successfully retrieved", models.ToTruckOwnerSummaryResponses(owners))
}
