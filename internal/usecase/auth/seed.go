package auth

import (
	"context"
	"errors"

	authn "github.com/BruksfildServices01/recipe-nest/internal/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

// EnsureAdmin creates the bootstrap admin account when it does not exist.
type EnsureAdmin struct {
	users user.Repository
}

func NewEnsureAdmin(users user.Repository) *EnsureAdmin {
	return &EnsureAdmin{users: users}
}

func (uc *EnsureAdmin) Execute(
	ctx context.Context,
	email string,
	password string,
) (bool, error) {

	email = validators.NormalizeEmail(email)
	if _, err := uc.users.GetByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return false, err
	}

	hash, err := authn.HashPassword(password)
	if err != nil {
		return false, err
	}

	admin := &models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         string(user.RoleAdmin),
	}
	if err := uc.users.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
