package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"agriadmin/models"
	"agriadmin/services"
	"agriadmin/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	UserIDKey  = "user_id"
	IsAdminKey = "is_admin"
)

// TokenValidator is satisfied by *utils.TokenService.
type TokenValidator interface {
	Validate(tokenStr string, kind utils.TokenKind) (*utils.Claims, error)
}

// CategoryLookup is satisfied by *services.UserService.
type CategoryLookup interface {
	CategoryOf(ctx context.Context, userID int64) (int64, error)
}

func deny(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.ErrorResponse{Message: message})
}

// JWTChecker requires "Authorization: Bearer <access token>" and stores the
// caller's id under UserIDKey.
func JWTChecker(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			deny(c, http.StatusUnauthorized, "Access denied, token missing")
			return
		}
		scheme, token, ok := strings.Cut(header, " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			deny(c, http.StatusUnauthorized, "Access denied, Invalid token format")
			return
		}
		claims, err := tokens.Validate(token, utils.AccessToken)
		if err != nil {
			log.WithError(err).WithField("path", c.FullPath()).Debug("token rejected")
			deny(c, http.StatusUnauthorized, "Access denied, Invalid token or expired")
			return
		}
		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// AdminChecker runs after JWTChecker and lets only category 3 through.
func AdminChecker(users CategoryLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetCurrentUserID(c)
		if !ok {
			deny(c, http.StatusUnauthorized, "Access denied, token missing")
			return
		}
		category, err := users.CategoryOf(c.Request.Context(), userID)
		switch {
		case errors.Is(err, services.ErrNotFound):
			deny(c, http.StatusNotFound, "User not found")
			return
		case err != nil:
			log.WithError(err).WithField("user_id", userID).Error("admin check failed")
			deny(c, http.StatusInternalServerError, "Internal server error")
			return
		case category != models.CategoryAdmin:
			deny(c, http.StatusForbidden, "Access denied, Admins only")
			return
		}
		c.Set(IsAdminKey, true)
		c.Next()
	}
}

// GetCurrentUserID returns the id JWTChecker stored on the context.
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
