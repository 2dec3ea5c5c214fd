package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
)

type RecipeGormRepository struct {
	db *gorm.DB
}

var _ recipe.Repository = (*RecipeGormRepository)(nil)

func NewRecipeGormRepository(db *gorm.DB) *RecipeGormRepository {
	return &RecipeGormRepository{db: db}
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *RecipeGormRepository) Create(
	ctx context.Context,
	rec *models.Recipe,
) error {
	return translate(r.db.WithContext(ctx).Omit("Chef", "Ratings").Create(rec).Error)
}

func (r *RecipeGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Recipe, error) {

	var rec models.Recipe
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *RecipeGormRepository) Update(
	ctx context.Context,
	rec *models.Recipe,
) error {
	return translate(r.db.WithContext(ctx).Omit("Chef", "Ratings").Save(rec).Error)
}

func (r *RecipeGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *RecipeGormRepository) IncrementViews(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

type listingRow struct {
	ID           uint
	Title        string
	Type         *string
	Cuisine      *string
	Description  string
	Ingredients  *string
	Instructions *string
	ImagePath    *string
	ChefID       uint
	ViewCount    int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ChefName      string
	AverageRating float64
	RatingCount   int64
}

func (row listingRow) toListing() recipe.Listing {
	return recipe.Listing{
		Recipe: models.Recipe{
			ID:           row.ID,
			Title:        row.Title,
			Type:         row.Type,
			Cuisine:      row.Cuisine,
			Description:  row.Description,
			Ingredients:  row.Ingredients,
			Instructions: row.Instructions,
			ImagePath:    row.ImagePath,
			ChefID:       row.ChefID,
			ViewCount:    row.ViewCount,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		},
		ChefName:      row.ChefName,
		AverageRating: row.AverageRating,
		RatingCount:   row.RatingCount,
	}
}

func (r *RecipeGormRepository) listingQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("recipes").
		Select(`recipes.*,
			COALESCE(users.name, '') AS chef_name,
			COALESCE(AVG(ratings.rating_value), 0) AS average_rating,
			COUNT(ratings.id) AS rating_count`).
		Joins("LEFT JOIN users ON users.id = recipes.chef_id").
		Joins("LEFT JOIN ratings ON ratings.recipe_id = recipes.id").
		Group("recipes.id, users.name")
}

func (r *RecipeGormRepository) GetListing(
	ctx context.Context,
	id uint,
) (*recipe.Listing, error) {

	var rows []listingRow
	if err := r.listingQuery(ctx).
		Where("recipes.id = ?", id).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	l := rows[0].toListing()
	return &l, nil
}

func (r *RecipeGormRepository) List(
	ctx context.Context,
	f recipe.Filter,
) ([]recipe.Listing, error) {

	f = f.Normalized()
	q := r.listingQuery(ctx)

	if f.ChefID != 0 {
		q = q.Where("recipes.chef_id = ?", f.ChefID)
	}
	if f.Type != "" {
		q = q.Where("LOWER(recipes.type) = ?", f.Type)
	}
	if f.Cuisine != "" {
		q = q.Where("LOWER(recipes.cuisine) = ?", f.Cuisine)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where(
			"(LOWER(recipes.title) LIKE ? OR LOWER(recipes.description) LIKE ? OR LOWER(COALESCE(recipes.ingredients, '')) LIKE ?)",
			like, like, like,
		)
	}

	var rows []listingRow
	if err := q.
		Order("recipes.created_at DESC, recipes.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]recipe.Listing, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toListing())
	}
	return out, nil
}
