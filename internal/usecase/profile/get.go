package profile

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

var errUserNotFound = httperr.NotFoundErr("user_not_found", "User does not exist.")

type GetProfile struct {
	users user.Repository
}

func NewGetProfile(users user.Repository) *GetProfile {
	return &GetProfile{users: users}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uint) (*models.User, error) {
	return loadUser(ctx, uc.users, userID)
}

func loadUser(ctx context.Context, users user.Repository, id uint) (*models.User, error) {
	u, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return u, nil
}

type ListChefs struct {
	users user.Repository
}

func NewListChefs(users user.Repository) *ListChefs {
	return &ListChefs{users: users}
}

func (uc *ListChefs) Execute(ctx context.Context) ([]user.ChefSummary, error) {
	return uc.users.ListChefs(ctx)
}
