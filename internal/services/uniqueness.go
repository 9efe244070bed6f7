package services

import (
	"context"
	"errors"

	"trucki/internal/repository"
)

// UniquenessValidator checks candidate identity values against existing
// active records. It must run before any asset upload or credential
// provisioning so a duplicate never triggers wasted side effects.
type UniquenessValidator interface {
	CheckDriverIdentity(ctx context.Context, email, phone string) error
}

type driverUniquenessValidator struct {
	drivers repository.DriverStore
}

func NewDriverUniquenessValidator(drivers repository.DriverStore) UniquenessValidator {
	return &driverUniquenessValidator{drivers: drivers}
}

func (v *driverUniquenessValidator) CheckDriverIdentity(ctx context.Context, email, phone string) error {
	existing, err := v.drivers.FindActiveByEmailOrPhone(ctx, email, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	if existing.EmailAddress == email {
		return ErrEmailTaken
	}
	return ErrPhoneTaken
}
