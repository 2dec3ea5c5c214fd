package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/review"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

var _ review.Repository = (*ReviewGormRepository)(nil)

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	rv *models.PublicReview,
) error {
	return translate(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *ReviewGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.PublicReview, error) {

	var rv models.PublicReview
	if err := r.db.WithContext(ctx).First(&rv, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *ReviewGormRepository) List(
	ctx context.Context,
	status *review.Status,
) ([]models.PublicReview, error) {

	q := r.db.WithContext(ctx).Model(&models.PublicReview{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var out []models.PublicReview
	if err := q.Order("submitted_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReviewGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status review.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.PublicReview{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Postgres reports affected rows even when the value is unchanged,
		// so zero means the row is gone.
		return domain.ErrNotFound
	}
	return nil
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.PublicReview{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
