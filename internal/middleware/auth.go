package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"parts_office/internal/auth"
)

const actorKey = "actor"

// RequireAuth verifies the Authorization header once at the boundary
// and stores the typed actor in the request context. Handlers and
// services downstream never see the raw credential.
func RequireAuth(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := tokens.Verify(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "msg": err.Error()})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// RequireSuper gates elevated-privilege operations. Must run after
// RequireAuth.
func RequireSuper() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ActorFrom(c).Super {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": 403, "msg": "super admin only"})
			return
		}
		c.Next()
	}
}

// ActorFrom returns the actor RequireAuth resolved for this request.
func ActorFrom(c *gin.Context) auth.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(auth.Actor); ok {
			return actor
		}
	}
	return auth.Actor{}
}
