package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskflow-dev/taskflow-api/internal/auth"
	"github.com/taskflow-dev/taskflow-api/internal/authz"
	"github.com/taskflow-dev/taskflow-api/internal/constants"
	"github.com/taskflow-dev/taskflow-api/internal/models"
	"github.com/taskflow-dev/taskflow-api/internal/response"
)

// RequireAuth verifies the bearer token and attaches the authenticated
// actor to the request context.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Authorization token is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActor, authz.Actor{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// RequireRoles rejects authenticated actors whose role is not in the
// allowed set. Must run after RequireAuth.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}
		if _, ok := allowed[actor.Role]; !ok {
			response.Forbidden(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetActor retrieves the authenticated actor from the request context.
func GetActor(c *gin.Context) (authz.Actor, bool) {
	v, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return authz.Actor{}, false
	}
	actor, ok := v.(authz.Actor)
	return actor, ok
}
