package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/middleware"
)

// multipartOverhead leaves room for the text parts of a form next to the file.
const multipartOverhead = 1 << 20

// parseID reads a positive numeric path parameter. Anything else renders
// a 404 with the given code, the same answer as an unknown id.
func parseID(c *gin.Context, param, notFoundCode string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, notFoundCode, "Resource not found.")
		return 0, false
	}
	return uint(id), true
}

// currentActor is only valid behind AuthMiddleware.
func currentActor(c *gin.Context) user.Actor {
	actor, _ := middleware.ActorFrom(c)
	return actor
}

func optionalActor(c *gin.Context) *user.Actor {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return nil
	}
	return &actor
}

func limitBody(c *gin.Context, maxBytes int64) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func fileTooLarge(field string) error {
	return httperr.Validation("file_too_large", "Uploaded file is too large.").
		WithField(field, "exceeds the maximum upload size")
}

// formFile returns the first present file among the given multipart names.
// A nil header with a nil error means no file was sent.
func formFile(c *gin.Context, names ...string) (*multipart.FileHeader, string, error) {
	for _, name := range names {
		fh, err := c.FormFile(name)
		if err == nil {
			return fh, name, nil
		}
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		return nil, name, err
	}
	return nil, "", nil
}
