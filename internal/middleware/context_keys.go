package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/shunmuga-sundaram/mithra-gold-portfolio-sub001/internal/core/domain"
)

// Keys used to store request-scoped values in the standard context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	roleKey      = contextKey("role")
)

// WithActor returns a copy of ctx carrying the authenticated principal.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.ID)
	return context.WithValue(ctx, roleKey, actor.Role)
}

// GetActorFromContext retrieves the authenticated principal set by AuthMiddleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	ctx := c.Request.Context()
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return domain.Actor{}, false
	}
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: userID, Role: role}, true
}
