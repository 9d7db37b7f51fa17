package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"basegraph.app/helpdesk/common/id"
	"basegraph.app/helpdesk/internal/http/middleware"
	"basegraph.app/helpdesk/internal/model"
	"basegraph.app/helpdesk/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError maps service error kinds onto status codes. Anything it does
// not recognize is logged and hidden behind fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verr.Messages})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": service.Message(err)})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": service.Message(err)})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": service.Message(err)})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.Message(err)})
	default:
		slog.ErrorContext(c.Request.Context(), fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// pathID reads a numeric path parameter. Malformed ids cannot exist, so they
// answer with notFound.
func pathID(c *gin.Context, name string, notFound error) (int64, bool) {
	v, err := id.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.Message(notFound)})
		return 0, false
	}
	return v, true
}

func currentUser(c *gin.Context) *model.User {
	return middleware.GetUser(c.Request.Context())
}
