package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/domain"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "requestID"

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond renders err. Business errors keep their code and fields,
// repository sentinels map to 404/400, everything else is logged and
// rendered as a generic 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	switch {
	case errors.As(err, &be):
		c.JSON(StatusFor(be.Kind), HTTPError{
			Code:    be.Code,
			Message: be.Message,
			Errors:  be.Fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		NotFound(c, "not_found", "Resource not found.")
	case errors.Is(err, domain.ErrDuplicate):
		BadRequest(c, "duplicate", "Resource already exists.")
	default:
		slog.Error("unhandled error",
			"error", err,
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		Internal(c, "internal_error", "An unexpected error occurred.")
	}
}
