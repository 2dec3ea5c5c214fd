package auth

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

type TokenIssuer interface {
	Issue(userID uint, role user.Role) (string, error)
}

type LoginResult struct {
	Token string
	User  *models.User
}

type Login struct {
	users  user.Repository
	tokens TokenIssuer
}

func NewLogin(
	users user.Repository,
	tokens TokenIssuer,
) *Login {
	return &Login{
		users:  users,
		tokens: tokens,
	}
}

// Execute distinguishes an unknown email (404) from a wrong password (401).
func (uc *Login) Execute(
	ctx context.Context,
	email string,
	password string,
) (*LoginResult, error) {

	email = validators.NormalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, httperr.Validation("invalid_request", "Email and password are required.")
	}

	u, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("user_not_found", "User does not exist.")
		}
		return nil, err
	}

	if err := authn.CheckPassword(u.PasswordHash, password); err != nil {
		if errors.Is(err, authn.ErrPasswordMismatch) {
			return nil, httperr.Auth("invalid_credentials", "Invalid email or password.")
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(u.ID, user.Role(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: u}, nil
}
