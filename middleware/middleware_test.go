package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agriadmin/models"
	"agriadmin/services"
	"agriadmin/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type categories map[int64]int64

func (c categories) CategoryOf(_ context.Context, id int64) (int64, error) {
	if id == 500 {
		return 0, errors.New("connection reset")
	}
	cat, ok := c[id]
	if !ok {
		return 0, services.ErrNotFound
	}
	return cat, nil
}

func newRouter(tokens *utils.TokenService, users CategoryLookup) *gin.Engine {
	r := gin.New()
	r.GET("/private", JWTChecker(tokens), AdminChecker(users), func(c *gin.Context) {
		id, _ := GetCurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "is_admin": c.GetBool(IsAdminKey)})
	})
	return r
}

func call(r http.Handler, header string) (*httptest.ResponseRecorder, models.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var body models.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestAuthChain(t *testing.T) {
	tokens := utils.NewTokenService("access", "refresh")
	r := newRouter(tokens, categories{1001: models.CategoryAdmin, 1002: models.CategoryFarmer, 500: 0})

	token := func(id int64, kind utils.TokenKind, ttl time.Duration) string {
		s, err := tokens.Issue(id, kind, ttl)
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"missing", "", http.StatusUnauthorized, "Access denied, token missing"},
		{"no scheme", token(1001, utils.AccessToken, time.Hour), http.StatusUnauthorized, "Access denied, Invalid token format"},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Access denied, Invalid token format"},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized, "Access denied, Invalid token or expired"},
		{"expired", "Bearer " + token(1001, utils.AccessToken, -time.Minute), http.StatusUnauthorized, "Access denied, Invalid token or expired"},
		{"refresh token", "Bearer " + token(1001, utils.RefreshToken, time.Hour), http.StatusUnauthorized, "Access denied, Invalid token or expired"},
		{"unknown user", "Bearer " + token(1003, utils.AccessToken, time.Hour), http.StatusNotFound, "User not found"},
		{"farmer", "Bearer " + token(1002, utils.AccessToken, time.Hour), http.StatusForbidden, "Access denied, Admins only"},
		{"lookup failure", "Bearer " + token(500, utils.AccessToken, time.Hour), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := call(r, tt.header)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}

	t.Run("admin", func(t *testing.T) {
		w, _ := call(r, "Bearer "+token(1001, utils.AccessToken, time.Hour))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":1001,"is_admin":true}`, w.Body.String())
	})
}

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&log.JSONFormatter{})

	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger))
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, generated, entry[RequestIDKey])
	assert.Equal(t, "/api/ping", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.Equal(t, "info", entry["level"])

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
