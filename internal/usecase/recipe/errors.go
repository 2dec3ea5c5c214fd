package recipe

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	recipedomain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

var (
	errRecipeNotFound = httperr.NotFoundErr("recipe_not_found", "Recipe not found.")
	errNotOwner       = httperr.Forbidden("forbidden", "You can only manage your own recipes.")
	errChefOnly       = httperr.Forbidden("forbidden", "Only chefs can create recipes.")
)

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return errRecipeNotFound
	}
	return err
}

// loadManaged fetches a recipe the actor is allowed to modify.
func loadManaged(
	ctx context.Context,
	repo recipedomain.Repository,
	actor user.Actor,
	id uint,
) (*models.Recipe, error) {

	rec, err := repo.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if !recipedomain.CanManage(actor, rec) {
		return nil, errNotOwner
	}
	return rec, nil
}
