package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
)

type GetRecipe struct {
	repo domain.Repository
}

func NewGetRecipe(repo domain.Repository) *GetRecipe {
	return &GetRecipe{repo: repo}
}

// Execute counts a view and returns the recipe with its fresh aggregate.
func (uc *GetRecipe) Execute(ctx context.Context, id uint) (*domain.Listing, error) {
	if err := uc.repo.IncrementViews(ctx, id); err != nil {
		return nil, notFound(err)
	}

	l, err := uc.repo.GetListing(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return l, nil
}
