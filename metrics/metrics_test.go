package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationCounters(t *testing.T) {
	m := New()
	m.ObserveAllocation("farms", 2, false)
	m.ObserveAllocation("farms", 64, true)
	m.ObserveCollisionRetry("farms")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.allocExhausted.WithLabelValues("farms")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.collisionRetry.WithLabelValues("farms")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.allocLookups))
}

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/ping", "GET", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "agriadmin_http_requests_total")
}
