package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
)

type ListRecipes struct {
	repo domain.Repository
}

func NewListRecipes(repo domain.Repository) *ListRecipes {
	return &ListRecipes{repo: repo}
}

func (uc *ListRecipes) Execute(ctx context.Context, f domain.Filter) ([]domain.Listing, error) {
	return uc.repo.List(ctx, f)
}

type ChefStats struct {
	repo domain.Repository
}

func NewChefStats(repo domain.Repository) *ChefStats {
	return &ChefStats{repo: repo}
}

func (uc *ChefStats) Execute(ctx context.Context, chefID uint) (domain.Stats, error) {
	listings, err := uc.repo.List(ctx, domain.Filter{ChefID: chefID})
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(listings), nil
}
