package rating

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/clock"
	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	ratingdomain "github.com/BruksfildServices01/recipe-nest/internal/domain/rating"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type Result struct {
	Rating  models.Rating
	Summary ratingdomain.Summary
}

type SubmitRating struct {
	recipes recipe.Repository
	ratings ratingdomain.Repository
	clock   clock.Clock
}

func NewSubmitRating(
	recipes recipe.Repository,
	ratings ratingdomain.Repository,
	clk clock.Clock,
) *SubmitRating {
	if clk == nil {
		clk = clock.System{}
	}
	return &SubmitRating{
		recipes: recipes,
		ratings: ratings,
		clock:   clk,
	}
}

// Execute records one rating event. Repeated submissions add rows.
func (uc *SubmitRating) Execute(
	ctx context.Context,
	actor user.Actor,
	recipeID uint,
	value int,
) (*Result, error) {

	if err := ratingdomain.Validate(value); err != nil {
		return nil, err
	}

	if _, err := uc.recipes.Get(ctx, recipeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("recipe_not_found", "Recipe not found.")
		}
		return nil, err
	}

	r := models.Rating{
		RatingValue: value,
		RatedAt:     uc.clock.Now().Truncate(time.Microsecond),
		RecipeID:    recipeID,
		UserID:      actor.UserID,
	}
	if err := uc.ratings.Create(ctx, &r); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("recipe_not_found", "Recipe not found.")
		}
		return nil, err
	}

	summary, err := uc.ratings.Summary(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	return &Result{Rating: r, Summary: summary}, nil
}
