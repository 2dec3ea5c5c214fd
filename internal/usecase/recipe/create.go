package recipe

import (
	"context"

	domain "github.com/BruksfildServices01/recipe-nest/internal/domain/recipe"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/storage"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
)

type CreateRecipe struct {
	repo     domain.Repository
	uploader *upload.Uploader
}

func NewCreateRecipe(
	repo domain.Repository,
	uploader *upload.Uploader,
) *CreateRecipe {
	return &CreateRecipe{
		repo:     repo,
		uploader: uploader,
	}
}

// Execute creates a recipe owned by the calling chef. image may be nil.
func (uc *CreateRecipe) Execute(
	ctx context.Context,
	actor user.Actor,
	in Input,
	image *upload.File,
) (*domain.Listing, error) {

	if !actor.Is(user.RoleChef) {
		return nil, errChefOnly
	}

	in, err := in.validate()
	if err != nil {
		return nil, err
	}

	rec := &models.Recipe{ChefID: actor.UserID}
	in.apply(rec)

	if image != nil {
		path, err := uc.uploader.StoreImage(ctx, storage.FolderRecipes, "Image", *image)
		if err != nil {
			return nil, err
		}
		rec.ImagePath = &path
	}

	if err := uc.repo.Create(ctx, rec); err != nil {
		uc.uploader.Remove(ctx, rec.ImagePath)
		return nil, err
	}

	return uc.repo.GetListing(ctx, rec.ID)
}
