package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
)

const RequestIDHeader = "X-Request-Id"

// RequestID propagates an incoming request id or generates one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(httperr.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
