package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartshop/api/pkg/apperror"
	"github.com/smartshop/api/pkg/logger"
)

const (
	// HeaderUserID carries the already-authenticated user identifier, set by
	// the upstream gateway. This service never authenticates.
	HeaderUserID = "X-User-ID"

	GinContextKeyUserID = "userID"
)

func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-User-ID header is required"})
			return
		}

		c.Set(GinContextKeyUserID, userID)
		c.Next()
	}
}

func GetUserIDFromGinContext(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeyUserID)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok
}

// ErrorMiddleware turns errors attached via c.Error into JSON responses using
// the apperror status mapping.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", err, zap.String("path", c.FullPath()))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err, zap.String("path", c.FullPath()))
		c.JSON(status, gin.H{"error": "internal server error"})
	}
}
