package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/rating"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type RatingGormRepository struct {
	db *gorm.DB
}

var _ rating.Repository = (*RatingGormRepository)(nil)

func NewRatingGormRepository(db *gorm.DB) *RatingGormRepository {
	return &RatingGormRepository{db: db}
}

func (r *RatingGormRepository) Create(
	ctx context.Context,
	rt *models.Rating,
) error {
	return translate(r.db.WithContext(ctx).Omit("User").Create(rt).Error)
}

func (r *RatingGormRepository) Summary(
	ctx context.Context,
	recipeID uint,
) (rating.Summary, error) {

	var s rating.Summary
	err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(rating_value), 0) AS average, COUNT(id) AS count").
		Where("recipe_id = ?", recipeID).
		Scan(&s).Error
	return s, err
}
