package services

import (
	"context"
	"errors"
	"net/http"

	logrus "github.com/sirupsen/logrus"

	"trucki/internal/models"
	"trucki/internal/repository"
)

// DriverService orchestrates the driver lifecycle: uniqueness check, asset
// upload, credential provisioning, and persistence. The steps are awaited
// sequentially and are not transactionally linked; an uploaded asset or a
// provisioned login can outlive a failure in a later step. The unique index
// at the persistence layer is the only guard against the check/insert race.
type DriverService struct {
	drivers   repository.DriverStore
	validator UniquenessValidator
	assets    AssetStore
	accounts  CredentialProvisioner
}

func NewDriverService(drivers repository.DriverStore, validator UniquenessValidator,
	assets AssetStore, accounts CredentialProvisioner) *DriverService {
	return &DriverService{
		drivers:   drivers,
		validator: validator,
		assets:    assets,
		accounts:  accounts,
	}
}

// AddDriver runs the full onboarding flow and returns the one-time password
// as envelope data on success.
func (s *DriverService) AddDriver(ctx context.Context, req models.AddDriverRequest) *models.ApiResponse[string] {
	if err := s.validator.CheckDriverIdentity(ctx, req.Email, req.Phone); err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return models.Failure[string](http.StatusBadRequest, "Email address already exists")
		case errors.Is(err, ErrPhoneTaken):
			return models.Failure[string](http.StatusBadRequest, "Phone number already exists")
		default:
			logrus.WithError(err).Error("driver uniqueness check failed")
			return models.Failure[string](http.StatusInternalServerError, "An error occurred while creating the driver")
		}
	}

	idCardURL, err := uploadAsset(ctx, s.assets, req.IdCard, req.Name+"userIdCard")
	if err != nil {
		logrus.WithError(err).Error("id card upload failed")
		return models.Failure[string](http.StatusBadRequest, "Invalid identity card payload")
	}
	pictureURL, err := uploadAsset(ctx, s.assets, req.Picture, req.Name+"userProfilePicture")
	if err != nil {
		logrus.WithError(err).Error("profile picture upload failed")
		return models.Failure[string](http.StatusBadRequest, "Invalid profile picture payload")
	}

	creds, err := s.accounts.Provision(ctx, req.Name, req.Email, "driver")
	if err != nil {
		// The entity row is not written when provisioning fails, but an
		// already-stored asset is left behind; no compensation is attempted.
		logrus.WithError(err).WithField("email", req.Email).Error("credential provisioning failed")
		return models.Failure[string](http.StatusBadRequest, "An error occurred while creating the driver")
	}

	driver := models.Driver{
		UserID:            creds.UserID,
		Name:              req.Name,
		Phone:             req.Phone,
		EmailAddress:      req.Email,
		TruckID:           req.TruckID,
		IdentityCardURL:   idCardURL,
		ProfilePictureURL: pictureURL,
		IsActive:          true,
	}
	if err := s.drivers.Create(ctx, &driver); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Failure[string](http.StatusBadRequest, "Email address already exists")
		}
		logrus.WithError(err).Error("driver persist failed after provisioning")
		return models.Failure[string](http.StatusInternalServerError, "An error occurred while creating the driver")
	}

	// The raw password is delivered exactly once, here.
	return models.Success(http.StatusCreated, "Driver created successfully", creds.RawPassword)
}

// EditDriver overwrites name and phone and replaces the profile picture
// reference. When no payload is supplied the reference is cleared to empty;
// a replaced object is not deleted.
func (s *DriverService) EditDriver(ctx context.Context, id uint, req models.EditDriverRequest) *models.ApiResponse[bool] {
	driver, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[bool](http.StatusNotFound, "Driver not found")
		}
		logrus.WithError(err).Error("driver lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the driver")
	}

	driver.Name = req.Name
	driver.Phone = req.Phone

	pictureURL, err := uploadAsset(ctx, s.assets, req.ProfilePicture, driver.Name+"userProfilePicture")
	if err != nil {
		logrus.WithError(err).Error("profile picture upload failed")
		return models.Failure[bool](http.StatusBadRequest, "Invalid profile picture payload")
	}
	driver.ProfilePictureURL = pictureURL

	if err := s.drivers.Update(ctx, driver); err != nil {
		logrus.WithError(err).Error("driver update failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while updating the driver")
	}
	return models.Success(http.StatusOK, "Driver updated successfully", true)
}

// DeactivateDriver is a one-way transition; repeating it on an already
// inactive driver succeeds without a distinct error.
func (s *DriverService) DeactivateDriver(ctx context.Context, id uint) *models.ApiResponse[bool] {
	driver, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[bool](http.StatusNotFound, "Driver not found")
		}
		logrus.WithError(err).Error("driver lookup failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while deactivating the driver")
	}

	driver.IsActive = false
	if err := s.drivers.Update(ctx, driver); err != nil {
		logrus.WithError(err).Error("driver deactivation failed")
		return models.Failure[bool](http.StatusInternalServerError, "An error occurred while deactivating the driver")
	}
	return models.Success(http.StatusOK, "Driver deactivated successfully", true)
}

func (s *DriverService) GetAllDrivers(ctx context.Context) *models.ApiResponse[[]models.DriverSummaryResponse] {
	drivers, err := s.drivers.List(ctx)
	if err != nil {
		logrus.WithError(err).Error("driver list failed")
		return models.Failure[[]models.DriverSummaryResponse](http.StatusInternalServerError, "An error occurred while retrieving drivers")
	}
	return models.Success(http.StatusOK, "Drivers retrieved successfully", models.ToDriverSummaryResponses(drivers))
}

func (s *DriverService) GetDriverByID(ctx context.Context, id uint) *models.ApiResponse[models.DriverResponse] {
	driver, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[models.DriverResponse](http.StatusNotFound, "Driver not found")
		}
		logrus.WithError(err).Error("driver lookup failed")
		return models.Failure[models.DriverResponse](http.StatusInternalServerError, "An error occurred while retrieving the driver")
	}
	return models.Success(http.StatusOK, "Driver retrieved successfully", models.ToDriverResponse(*driver))
}

// GetDriverProfile resolves the driver from the authenticated user id
// carried in the token claims, never from a request-supplied id.
func (s *DriverService) GetDriverProfile(ctx context.Context, userID uint) *models.ApiResponse[models.DriverResponse] {
	driver, err := s.drivers.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Failure[models.DriverResponse](http.StatusNotFound, "Driver not found")
		}
		logrus.WithError(err).Error("driver profile lookup failed")
		return models.Failure[models.DriverResponse](http.StatusInternalServerError, "An error occurred while retrieving the driver")
	}
	return models.Success(http.StatusOK, "Driver retrieved successfully", models.ToDriverResponse(*driver))
}

// SearchDrivers matches the term as a case-insensitive substring of the
// name. Sentinel terms mean "no filter".
func (s *DriverService) SearchDrivers(ctx context.Context, term string) *models.ApiResponse[[]models.DriverSummaryResponse] {
	var (
		drivers []models.Driver
		err     error
	)
	if matchesAll(term) {
		drivers, err = s.drivers.List(ctx)
	} else {
		drivers, err = s.drivers.SearchByName(ctx, term)
	}
	if err != nil {
		logrus.WithError(err).Error("driver search failed")
		return models.Failure[[]models.DriverSummaryResponse](http.StatusInternalServerError, "An error occurred while searching drivers")
	}
	if len(drivers) == 0 {
		return models.FailureWith(http.StatusNotFound, "No driver found", []models.DriverSummaryResponse{})
	}
	return models.Success(http.StatusOK, "Drivers successfully retrieved", models.ToDriverSummaryResponses(drivers))
}
