package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"trucki/internal/models"
	"trucki/internal/repository"
)

// Credentials is the result of a successful provisioning. RawPassword is
// returned exactly once and never stored in the clear.
type Credentials struct {
	UserID      uint
	RawPassword string
}

// CredentialProvisioner creates a login identity bound to a role for entity
// kinds that authenticate later.
type CredentialProvisioner interface {
	Provision(ctx context.Context, name, email, role string) (Credentials, error)
}

type AccountProvisioner struct {
	users repository.UserStore
}

func NewAccountProvisioner(users repository.UserStore) *AccountProvisioner {
	return &AccountProvisioner{users: users}
}

func (p *AccountProvisioner) Provision(ctx context.Context, name, email, role string) (Credentials, error) {
	password, err := GenerateRandomPassword()
	if err != nil {
		return Credentials{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credentials{}, err
	}
	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := p.users.Create(ctx, &user); err != nil {
		return Credentials{}, err
	}
	return Credentials{UserID: user.ID, RawPassword: password}, nil
}
