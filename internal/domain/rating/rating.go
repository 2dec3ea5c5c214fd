package rating

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

const (
	MinValue = 1
	MaxValue = 5
)

// Summary is the read-time aggregate of a recipe's ratings.
type Summary struct {
	Average float64
	Count   int64
}

func Validate(value int) error {
	if value < MinValue || value > MaxValue {
		return httperr.Validation("invalid_rating", "Rating must be between 1 and 5.").
			WithField("rating", "must be between 1 and 5")
	}
	return nil
}

// Average is the arithmetic mean of values, or 0 when there are none.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func Summarize(values []int) Summary {
	return Summary{Average: Average(values), Count: int64(len(values))}
}

type Repository interface {
	Create(ctx context.Context, r *models.Rating) error
	Summary(ctx context.Context, recipeID uint) (Summary, error)
}
