package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"agriadmin/config"
	"agriadmin/metrics"
	"agriadmin/models"
	"agriadmin/services"
	"agriadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticCategories map[int64]int64

func (s staticCategories) CategoryOf(_ context.Context, id int64) (int64, error) {
	cat, ok := s[id]
	if !ok {
		return 0, services.ErrNotFound
	}
	return cat, nil
}

type emptySubsidies struct{}

func (emptySubsidies) List(context.Context, models.SubsidyFilter) ([]models.Subsidy, error) {
	return []models.Subsidy{}, nil
}
func (emptySubsidies) Get(context.Context, int64) (*models.Subsidy, error) { return nil, services.ErrNotFound }
func (emptySubsidies) Create(context.Context, models.SubsidyRequest) (int64, error) {
	return 40218, nil
}
func (emptySubsidies) Update(context.Context, int64, models.SubsidyRequest) error { return nil }
func (emptySubsidies) Delete(context.Context, int64) error                        { return nil }

func testRouter(t *testing.T) (*gin.Engine, *utils.TokenService) {
	t.Helper()
	tokens := utils.NewTokenService("access-secret", "refresh-secret")
	app := &application{
		tokens:     tokens,
		categories: staticCategories{100001: models.CategoryAdmin, 100002: models.CategoryFarmer},
		subsidies:  emptySubsidies{},
		catalogs:   &services.Catalogs{},
		metrics:    metrics.New(),
	}
	return newRouter(app, &config.Config{CORSOrigins: []string{"http://localhost:3000"}}), tokens
}

func TestRouterAccessRules(t *testing.T) {
	r, tokens := testRouter(t)
	adminToken, err := tokens.Issue(100001, utils.AccessToken, time.Minute)
	require.NoError(t, err)
	farmerToken, err := tokens.Issue(100002, utils.AccessToken, time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"ping is public", http.MethodGet, "/api/ping", "", http.StatusOK},
		{"subsidy list is public", http.MethodGet, "/api/subsidies/getSubsidy", "", http.StatusOK},
		{"subsidy delete needs token", http.MethodDelete, "/api/subsidies/deleteSubsidy/40218", "", http.StatusUnauthorized},
		{"subsidy delete needs admin", http.MethodDelete, "/api/subsidies/deleteSubsidy/40218", farmerToken, http.StatusForbidden},
		{"admin deletes subsidy", http.MethodDelete, "/api/subsidies/deleteSubsidy/40218", adminToken, http.StatusOK},
		{"farms need token", http.MethodGet, "/api/farmcrop/farms", "", http.StatusUnauthorized},
		{"users need admin", http.MethodGet, "/api/users/getUser", farmerToken, http.StatusForbidden},
		{"logout needs token", http.MethodPost, "/api/auth/logout", "", http.StatusUnauthorized},
		{"logout", http.MethodPost, "/api/auth/logout", farmerToken, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := testRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), `/api/ping`))
}

func TestSwaggerDescribesEveryRoute(t *testing.T) {
	r, _ := testRouter(t)

	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	var spec struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	pathParam := regexp.MustCompile(`:(\w+)`)
	for _, route := range r.Routes() {
		if !strings.HasPrefix(route.Path, "/api/") {
			continue
		}
		path := pathParam.ReplaceAllString(route.Path, "{$1}")
		_, ok := spec.Paths[path][strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s missing from swagger", route.Method, path)
	}
}

type blockingSweeper struct {
	calls   int
	release chan struct{}
	started chan struct{}
	n       int64
	err     error
	mu      sync.Mutex
}

func (b *blockingSweeper) DeactivateHarvested(context.Context, time.Time) (int64, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	if b.started != nil {
		close(b.started)
		<-b.release
	}
	return b.n, b.err
}

func TestSweepJobSkipsOverlappingRuns(t *testing.T) {
	sweeper := &blockingSweeper{started: make(chan struct{}), release: make(chan struct{}), n: 3}
	job := newSweepJob(sweeper, metrics.New())

	done := make(chan struct{})
	go func() {
		job.Run()
		close(done)
	}()
	<-sweeper.started

	job.Run()
	close(sweeper.release)
	<-done

	assert.Equal(t, 1, sweeper.calls)
	assert.False(t, job.running.Load())
}

func TestSweepJobFailureReleasesLock(t *testing.T) {
	sweeper := &blockingSweeper{err: errors.New("db down")}
	job := newSweepJob(sweeper, nil)

	job.Run()
	job.Run()

	assert.Equal(t, 2, sweeper.calls)
}

func TestStartSchedulerRejectsBadSpec(t *testing.T) {
	_, err := startScheduler("not a cron line", newSweepJob(&blockingSweeper{}, nil))
	require.Error(t, err)
}
