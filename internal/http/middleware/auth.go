package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"basegraph.app/helpdesk/common/logger"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

type contextKey string

const (
	userContextKey contextKey = "user"
	bearerPrefix              = "Bearer "
)

// Authenticator resolves a bearer token. service.AuthService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

func RequireAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			slog.ErrorContext(c.Request.Context(), "failed to authenticate request", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUser returns the authenticated user, or nil outside RequireAuth.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// WithUser is what RequireAuth stores. Exposed for handler tests.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	return token, token != ""
}
