package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/profile"
	"github.com/BruksfildServices01/recipe-nest/internal/usecase/upload"
)

type MeHandler struct {
	get            *profile.GetProfile
	update         *profile.UpdateProfile
	image          *profile.UpdateProfileImage
	maxUploadBytes int64
}

func NewMeHandler(
	get *profile.GetProfile,
	update *profile.UpdateProfile,
	image *profile.UpdateProfileImage,
	maxUploadBytes int64,
) *MeHandler {
	return &MeHandler{
		get:            get,
		update:         update,
		image:          image,
		maxUploadBytes: maxUploadBytes,
	}
}

type UpdateProfileRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  *string `json:"password"`
	RoleTitle *string `json:"roleTitle"`
	Specialty *string `json:"specialty"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	u, err := h.get.Execute(c.Request.Context(), currentActor(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserProfile(u))
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	u, err := h.update.Execute(c.Request.Context(), currentActor(c).UserID, profile.UpdateInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		RoleTitle: req.RoleTitle,
		Specialty: req.Specialty,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserProfile(u))
}

// UpdateImage accepts the picture under "image" or "file".
func (h *MeHandler) UpdateImage(c *gin.Context) {
	limitBody(c, h.maxUploadBytes)

	fh, _, err := formFile(c, "image", "file")
	if err != nil {
		if isTooLarge(err) {
			httperr.Respond(c, fileTooLarge("image"))
			return
		}
		httperr.Respond(c, upload.ErrInvalidImage("image"))
		return
	}
	if fh == nil {
		httperr.Respond(c, httperr.Validation("missing_file", "An image file is required.").
			WithField("image", "is required"))
		return
	}
	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		httperr.Respond(c, fileTooLarge("image"))
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	u, err := h.image.Execute(c.Request.Context(), currentActor(c).UserID, upload.File{
		Name: fh.Filename,
		Body: f,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	url := ""
	if u.ProfilePicturePath != nil {
		url = *u.ProfilePicturePath
	}
	httpresp.OK(c, dto.ProfileImageDTO{
		Message:           "Profile picture updated.",
		ProfilePictureURL: url,
	})
}
