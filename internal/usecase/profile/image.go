package profile

import (
	"context"

	"github.com/BruksfildServices01/recipe-nest/internal/audit"
	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/infra/storage"
	"github.com/BruksfildServices01/recipe-nest/internal/models"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
)

type UpdateProfileImage struct {
	users    user.Repository
	uploader *upload.Uploader
	audit    *audit.Dispatcher
}

func NewUpdateProfileImage(
	users user.Repository,
	uploader *upload.Uploader,
	audit *audit.Dispatcher,
) *UpdateProfileImage {
	return &UpdateProfileImage{
		users:    users,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *UpdateProfileImage) Execute(
	ctx context.Context,
	userID uint,
	file upload.File,
) (*models.User, error) {

	u, err := loadUser(ctx, uc.users, userID)
	if err != nil {
		return nil, err
	}

	path, err := uc.uploader.StoreImage(ctx, storage.FolderProfiles, "image", file)
	if err != nil {
		return nil, err
	}

	previous := u.ProfilePicturePath
	u.ProfilePicturePath = &path
	if err := uc.users.Update(ctx, u); err != nil {
		uc.uploader.Remove(ctx, &path)
		return nil, err
	}
	uc.uploader.Remove(ctx, previous)

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionProfileImageUpdated,
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
