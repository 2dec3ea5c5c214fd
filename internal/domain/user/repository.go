package user

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

// ChefSummary is the public listing row for a chef.
type ChefSummary struct {
	ID                 uint
	Name               string
	RoleTitle          *string
	Specialty          *string
	ProfilePicturePath *string
	RecipeCount        int64
}

type Repository interface {
	// Create fails with domain.ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *models.User) error

	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailTaken ignores the account identified by exceptID.
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)

	Update(ctx context.Context, u *models.User) error

	ListChefs(ctx context.Context) ([]ChefSummary, error)
}
