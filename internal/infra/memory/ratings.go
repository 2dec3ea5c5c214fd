package memory

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/rating"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type RatingRepository struct {
	s *Store
}

var _ rating.Repository = (*RatingRepository)(nil)

func (r *RatingRepository) Create(_ context.Context, rt *models.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.recipes[rt.RecipeID]; !ok {
		return domain.ErrNotFound
	}
	rt.ID = r.s.nextID("ratings")
	if rt.RatedAt.IsZero() {
		rt.RatedAt = r.s.now()
	}
	rt.User = models.User{}
	r.s.ratings[rt.ID] = *rt
	return nil
}

func (r *RatingRepository) Summary(_ context.Context, recipeID uint) (rating.Summary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var values []int
	for _, rt := range r.s.ratings {
		if rt.RecipeID == recipeID {
			values = append(values, rt.RatingValue)
		}
	}
	return rating.Summarize(values), nil
}
