package profile

import (
	"context"
	"errors"
	"strings"

	authn "github.com/BruksfildServices01/recipe-nest/internal/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

type UpdateInput struct {
	Name      string
	Email     string
	Password  *string
	RoleTitle *string
	Specialty *string
}

type UpdateProfile struct {
	users user.Repository
}

func NewUpdateProfile(users user.Repository) *UpdateProfile {
	return &UpdateProfile{users: users}
}

// Execute updates the caller's profile. An empty password keeps the
// current hash. Role never changes.
func (uc *UpdateProfile) Execute(
	ctx context.Context,
	userID uint,
	in UpdateInput,
) (*models.User, error) {

	u, err := loadUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}
	role := user.Role(u.Role)

	fields := validators.Fields{}
	name := fields.Required("name", in.Name, validators.MaxNameLen)
	email := fields.Email("email", in.Email)

	changePassword := in.Password != nil && strings.TrimSpace(*in.Password) != ""
	if changePassword {
		fields.Password("password", *in.Password)
	}

	roleTitle := fields.Optional("roleTitle", in.RoleTitle, validators.MaxRoleTitleLen)
	specialty := fields.Optional("specialty", in.Specialty, validators.MaxSpecialtyLen)
	user.ValidateChefFields(role, roleTitle, specialty, fields)

	if !fields.Empty() {
		be := httperr.Validation("validation_failed", "One or more fields are invalid.")
		for k, v := range fields {
			be = be.WithField(k, v)
		}
		return nil, be
	}

	if email != u.Email {
		taken, err := uc.users.EmailTaken(ctx, email, u.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errEmailTaken()
		}
	}

	u.Name = name
	u.Email = email
	if role.RequiresChefProfile() {
		u.RoleTitle = roleTitle
		u.Specialty = specialty
	}
	if changePassword {
		hash, err := authn.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := uc.users.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errEmailTaken()
		}
		return nil, err
	}
	return u, nil
}

func errEmailTaken() error {
	return httperr.Conflict("email_taken", "Email is already used by another account.").
		WithField("email", "is already registered")
}
