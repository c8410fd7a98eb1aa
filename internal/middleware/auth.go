package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sales-crm/internal/auth"
	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
)

const ContextActor = "actor"

// AuthMiddleware turns a Bearer token into an access.Actor on the context.
func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Respond(c, httperr.ErrUnauthenticated("missing_token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Respond(c, httperr.ErrUnauthenticated("invalid_token"))
			c.Abort()
			return
		}

		actor, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

// ActorFrom returns the authenticated actor. Only valid behind AuthMiddleware.
func ActorFrom(c *gin.Context) access.Actor {
	return c.MustGet(ContextActor).(access.Actor)
}

// RequireRole lets through actors holding one of roles.
func RequireRole(roles ...access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).HasRole(roles...) {
			httperr.Respond(c, httperr.ErrForbidden("forbidden"))
			c.Abort()
			return
		}
		c.Next()
	}
}
