package auth

import (
	"context"
	"errors"

	authn "github.com/BruksfildServices01/recipe-nest/internal/auth"
	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
	"github.com/BruksfildServices01/recipe-nest/internal/validators"
)

type SignupInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	RoleTitle *string
	Specialty *string
}

type Signup struct {
	users  user.Repository
	emails validators.DomainChecker
}

func NewSignup(
	users user.Repository,
	emails validators.DomainChecker,
) *Signup {
	if emails == nil {
		emails = validators.AcceptAll{}
	}
	return &Signup{
		users:  users,
		emails: emails,
	}
}

func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
) (*models.User, error) {

	fields := validators.Fields{}
	name := fields.Required("name", in.Name, validators.MaxNameLen)
	email := fields.Email("email", in.Email)
	fields.Password("password", in.Password)

	role, ok := user.ParseRole(in.Role)
	if !ok {
		fields.Add("role", "must be one of: Chef, FoodLover, Admin")
	}
	roleTitle := fields.Optional("roleTitle", in.RoleTitle, validators.MaxRoleTitleLen)
	specialty := fields.Optional("specialty", in.Specialty, validators.MaxSpecialtyLen)
	user.ValidateChefFields(role, roleTitle, specialty, fields)

	if !fields.Empty() {
		return nil, invalid(fields)
	}

	if !uc.emails.Valid(ctx, email) {
		return nil, httperr.Validation("invalid_email_domain", "The email domain does not appear to be valid.").
			WithField("email", "domain does not accept mail")
	}

	taken, err := uc.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errEmailTaken()
	}

	hash, err := authn.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         string(role),
	}
	if role.RequiresChefProfile() {
		u.RoleTitle = roleTitle
		u.Specialty = specialty
	}

	if err := uc.users.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errEmailTaken()
		}
		return nil, err
	}
	return u, nil
}

func invalid(fields validators.Fields) error {
	be := httperr.Validation("validation_failed", "One or more fields are invalid.")
	for k, v := range fields {
		be = be.WithField(k, v)
	}
	return be
}

func errEmailTaken() error {
	return httperr.Conflict("email_taken", "An account with this email already exists.").
		WithField("email", "is already registered")
}
