package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("access", "refresh")

	tok, err := svc.Issue(100042, AccessToken, 15*time.Minute)
	require.NoError(t, err)

	claims, err := svc.Validate(tok, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(100042), claims.UserID)
	assert.Equal(t, "100042", claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenKindsUseSeparateSecrets(t *testing.T) {
	svc := NewTokenService("access", "refresh")

	refresh, err := svc.Issue(1, RefreshToken, time.Hour)
	require.NoError(t, err)

	_, err = svc.Validate(refresh, AccessToken)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	claims, err := svc.Validate(refresh, RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.Kind)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewTokenService("access", "refresh")
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	tok, err := svc.Issue(7, AccessToken, 15*time.Minute)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	_, err = svc.Validate(tok, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTamperedTokenRejected(t *testing.T) {
	a := NewTokenService("one", "r")
	b := NewTokenService("two", "r")
	tok, err := a.Issue(7, AccessToken, time.Minute)
	require.NoError(t, err)

	_, err = b.Validate(tok, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, ValidatePassword(hash, "s3cret-pass"))
	assert.False(t, ValidatePassword(hash, "wrong"))
	assert.False(t, ValidatePassword("s3cret-pass", "s3cret-pass"), "plaintext storage must never match")
}

func TestCustomValidators(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	type form struct {
		Pincode string `validate:"pincode"`
		Phone   string `validate:"phone"`
	}
	assert.NoError(t, v.Struct(form{Pincode: "560001", Phone: "9876543210"}))
	assert.Error(t, v.Struct(form{Pincode: "056001", Phone: "9876543210"}))
	assert.Error(t, v.Struct(form{Pincode: "560001", Phone: "98-765"}))
}
