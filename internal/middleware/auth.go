package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/domain/user"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

type TokenParser interface {
	Parse(token string) (user.Actor, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setActor(c *gin.Context, actor user.Actor) {
	c.Set(ContextUserID, actor.UserID)
	c.Set(ContextUserRole, actor.Role)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authentication required.")
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Authorization header must be a Bearer token.")
			return
		}

		actor, err := tokens.Parse(tokenString)
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Token is invalid or expired.")
			return
		}

		setActor(c, actor)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and
// otherwise lets the request through anonymously.
func OptionalAuth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if actor, err := tokens.Parse(tokenString); err == nil {
				setActor(c, actor)
			}
		}
		c.Next()
	}
}

// RequireRoles must run after AuthMiddleware.
func RequireRoles(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Authentication required.")
			return
		}

		for _, role := range allowed {
			if actor.Role == role {
				c.Next()
				return
			}
		}

		httperr.Abort(c, http.StatusForbidden, "forbidden", "You do not have permission to access this resource.")
	}
}

// ActorFrom returns the authenticated caller stored by the auth middlewares.
func ActorFrom(c *gin.Context) (user.Actor, bool) {
	id, ok := c.Get(ContextUserID)
	if !ok {
		return user.Actor{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return user.Actor{}, false
	}
	role, _ := c.Get(ContextUserRole)
	r, _ := role.(user.Role)
	return user.Actor{UserID: userID, Role: r}, true
}
