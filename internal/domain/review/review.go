package review

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/rating"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

const (
	MinTextLen = 5
	MaxTextLen = 1000
)

// ValidateSubmission trims the text and checks length and rating bounds.
// It returns the trimmed text.
func ValidateSubmission(text string, ratingValue int) (string, error) {
	text = strings.TrimSpace(text)
	n := utf8.RuneCountInString(text)

	if n < MinTextLen || n > MaxTextLen {
		return "", httperr.Validation("invalid_review_text", "Review must be between 5 and 1000 characters.").
			WithField("reviewText", "must be between 5 and 1000 characters")
	}
	if err := rating.Validate(ratingValue); err != nil {
		return "", httperr.Validation("invalid_rating", "Rating must be between 1 and 5.").
			WithField("ratingValue", "must be between 1 and 5")
	}
	return text, nil
}

type Repository interface {
	Create(ctx context.Context, r *models.PublicReview) error
	Get(ctx context.Context, id uint) (*models.PublicReview, error)

	// List returns reviews newest first; a nil status returns every row.
	List(ctx context.Context, status *Status) ([]models.PublicReview, error)

	UpdateStatus(ctx context.Context, id uint, status Status) error
	Delete(ctx context.Context, id uint) error
}
