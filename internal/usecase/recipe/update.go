package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
)

type UpdateRecipe struct {
	repo domain.Repository
}

func NewUpdateRecipe(repo domain.Repository) *UpdateRecipe {
	return &UpdateRecipe{repo: repo}
}

// Execute replaces the text fields. The image is left untouched.
func (uc *UpdateRecipe) Execute(
	ctx context.Context,
	actor user.Actor,
	id uint,
	in Input,
) (*domain.Listing, error) {

	rec, err := loadManaged(ctx, uc.repo, actor, id)
	if err != nil {
		return nil, err
	}

	in, err = in.validate()
	if err != nil {
		return nil, err
	}
	in.apply(rec)

	if err := uc.repo.Update(ctx, rec); err != nil {
		return nil, notFound(err)
	}

	l, err := uc.repo.GetListing(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return l, nil
}
