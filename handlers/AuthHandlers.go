package handlers

import (
	"context"
	"net/http"

	"agriadmin/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	IssuePair(ctx context.Context, req models.LoginRequest) (models.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// Login godoc
// @Summary      Sign in with phone number and password
// @Description  Returns a long-lived session token. Web sign-in is limited to admins.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  models.LoginResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      401   {object}  models.ErrorResponse
// @Failure      403   {object}  models.ErrorResponse
// @Router       /api/login [post]
func Login(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Phone number and password are required", err)
			return
		}
		token, err := auth.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Login failed")
			return
		}
		c.JSON(http.StatusOK, models.LoginResponse{Token: token, Message: "Login successful"})
	}
}

// TokenLogin godoc
// @Summary      Sign in and receive an access/refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.LoginRequest  true  "Credentials"
// @Success      200   {object}  models.TokenPairResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      401   {object}  models.ErrorResponse
// @Failure      403   {object}  models.ErrorResponse
// @Router       /api/auth/login [post]
func TokenLogin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Missing phone number, password or platform", err)
			return
		}
		pair, err := auth.IssuePair(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Login failed")
			return
		}
		log.WithField("platform", req.Platform).Info("user signed in")
		c.JSON(http.StatusOK, pair)
	}
}

// RefreshToken godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      models.RefreshRequest  true  "Refresh token"
// @Success      200   {object}  models.AccessTokenResponse
// @Failure      401   {object}  models.ErrorResponse
// @Failure      403   {object}  models.ErrorResponse
// @Router       /api/auth/refresh [post]
func RefreshToken(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RefreshRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "No token provided"})
			return
		}
		access, err := auth.Refresh(c.Request.Context(), req.RefreshToken)
		if err != nil {
			respondError(c, err, "Invalid or expired refresh token")
			return
		}
		c.JSON(http.StatusOK, models.AccessTokenResponse{AccessToken: access})
	}
}

// Logout godoc
// @Summary      Sign out
// @Description  Tokens are stateless; the client discards them.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.LogoutResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/auth/logout [post]
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.LogoutResponse{Success: true, Message: "Logged out"})
	}
}
