package recipe

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Recipe) error
	Get(ctx context.Context, id uint) (*models.Recipe, error)
	Update(ctx context.Context, r *models.Recipe) error

	// Delete removes the recipe and all of its ratings.
	Delete(ctx context.Context, id uint) error

	// IncrementViews adds one to the view counter without touching updated_at.
	IncrementViews(ctx context.Context, id uint) error

	GetListing(ctx context.Context, id uint) (*Listing, error)
	List(ctx context.Context, f Filter) ([]Listing, error)
}
