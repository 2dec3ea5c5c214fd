package recipe

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	domain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
)

type DeleteRecipe struct {
	repo     domain.Repository
	uploader *upload.Uploader
	audit    *audit.Dispatcher
}

func NewDeleteRecipe(
	repo domain.Repository,
	uploader *upload.Uploader,
	audit *audit.Dispatcher,
) *DeleteRecipe {
	return &DeleteRecipe{
		repo:     repo,
		uploader: uploader,
		audit:    audit,
	}
}

// Execute removes the recipe together with its ratings.
func (uc *DeleteRecipe) Execute(
	ctx context.Context,
	actor user.Actor,
	id uint,
) error {

	rec, err := loadManaged(ctx, uc.repo, actor, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return notFound(err)
	}
	uc.uploader.Remove(ctx, rec.ImagePath)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   audit.ActionRecipeDeleted,
		Entity:   "recipe",
		EntityID: &rec.ID,
		Metadata: map[string]any{
			"title":   rec.Title,
			"chef_id": rec.ChefID,
		},
	})

	return nil
}
