package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"agriadmin/config"
	"agriadmin/models"
	"agriadmin/storage"
	"agriadmin/utils"

	log "github.com/sirupsen/logrus"
)

// AuthService checks credentials against bcrypt hashes and issues tokens.
type AuthService struct {
	db     *sql.DB
	tokens *utils.TokenService
	ttl    config.AuthConfig
}

func NewAuthService(db *sql.DB, tokens *utils.TokenService, ttl config.AuthConfig) *AuthService {
	return &AuthService{db: db, tokens: tokens, ttl: ttl}
}

// authenticate returns the user id for a valid phone/password pair. Web
// logins are limited to admins.
func (s *AuthService) authenticate(ctx context.Context, req models.LoginRequest) (int64, error) {
	ctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	var (
		userID   int64
		hash     string
		category sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT ua.user_id, ua.password, ud.category_id
		FROM users_auth ua
		LEFT JOIN user_details ud ON ud.user_id = ua.user_id
		WHERE ua.phone_number = $1`, req.PhoneNumber).Scan(&userID, &hash, &category)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: invalid phone number or password", ErrUnauthorized)
	}
	if err != nil {
		return 0, fmt.Errorf("load credentials: %w", err)
	}
	if !utils.ValidatePassword(hash, req.Password) {
		log.WithField("user_id", userID).Warn("login rejected: wrong password")
		return 0, fmt.Errorf("%w: invalid phone number or password", ErrUnauthorized)
	}
	if !category.Valid {
		return 0, fmt.Errorf("%w: user details not found", ErrUnauthorized)
	}
	if req.Platform == models.PlatformWeb && category.Int64 != models.CategoryAdmin {
		return 0, fmt.Errorf("%w: only admins can sign in to the web console", ErrForbidden)
	}
	return userID, nil
}

// Login returns a long-lived session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	userID, err := s.authenticate(ctx, req)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(userID, utils.AccessToken, s.ttl.SessionTokenTTL)
}

// IssuePair returns a short access token and a refresh token.
func (s *AuthService) IssuePair(ctx context.Context, req models.LoginRequest) (models.TokenPairResponse, error) {
	userID, err := s.authenticate(ctx, req)
	if err != nil {
		return models.TokenPairResponse{}, err
	}
	access, err := s.tokens.Issue(userID, utils.AccessToken, s.ttl.AccessTokenTTL)
	if err != nil {
		return models.TokenPairResponse{}, err
	}
	refresh, err := s.tokens.Issue(userID, utils.RefreshToken, s.ttl.RefreshTokenTTL)
	if err != nil {
		return models.TokenPairResponse{}, err
	}
	return models.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.Validate(refreshToken, utils.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	ctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()
	if err := storage.RefUser.Check(ctx, s.db, claims.UserID); err != nil {
		if errors.Is(err, storage.ErrInvalidReference) {
			return "", fmt.Errorf("%w: user no longer exists", ErrForbidden)
		}
		return "", err
	}
	return s.tokens.Issue(claims.UserID, utils.AccessToken, s.ttl.AccessTokenTTL)
}
