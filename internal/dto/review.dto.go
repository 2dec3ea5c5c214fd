package dto

import (
	"time"

	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type PublicReviewDTO struct {
	ID          uint      `json:"id"`
	ReviewText  string    `json:"reviewText"`
	RatingValue int       `json:"ratingValue"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

func NewPublicReview(r *models.PublicReview) PublicReviewDTO {
	return PublicReviewDTO{
		ID:          r.ID,
		ReviewText:  r.ReviewText,
		RatingValue: r.RatingValue,
		SubmittedAt: r.SubmittedAt,
		Status:      r.Status,
	}
}

func NewPublicReviews(rows []models.PublicReview) []PublicReviewDTO {
	out := make([]PublicReviewDTO, 0, len(rows))
	for i := range rows {
		out = append(out, NewPublicReview(&rows[i]))
	}
	return out
}

type AuditLogPageDTO struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}
