package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actuallystonmai/recommendation-engine/internal/config"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/handler"
)

type stubService struct{}

func (stubService) Recommend(context.Context, string) *domain.RecommendationResult {
	return &domain.RecommendationResult{Items: []domain.Item{{ID: 1}}, Source: domain.SourcePopular}
}
func (stubService) PopularMovies(context.Context) []domain.Item { return []domain.Item{{ID: 2}} }
func (stubService) SearchMovies(context.Context, string) []domain.Item { return nil }
func (stubService) ListItems(context.Context, string, domain.ListKind) ([]domain.Item, error) {
	return []domain.Item{}, nil
}
func (stubService) AddItem(context.Context, string, domain.ListKind, domain.Item) error { return nil }
func (stubService) RemoveItem(context.Context, string, domain.ListKind, int64) error { return nil }

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, RequestTimeout: 5 * time.Second},
		Auth:   config.AuthConfig{JWTSecret: "router-secret"},
	}
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString([]byte("router-secret"))
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRoutes(t *testing.T) {
	srv := httptest.NewServer(Setup(handler.NewHandler(stubService{}), testConfig(), stubPinger{}))
	defer srv.Close()

	cases := []struct {
		method string
		path   string
		auth   bool
		want   int
	}{
		{http.MethodGet, "/health", false, http.StatusOK},
		{http.MethodGet, "/metrics", false, http.StatusOK},
		{http.MethodGet, "/movies/popular", false, http.StatusOK},
		{http.MethodGet, "/movies/search", false, http.StatusBadRequest},
		{http.MethodGet, "/recommendations", false, http.StatusUnauthorized},
		{http.MethodGet, "/recommendations", true, http.StatusOK},
		{http.MethodGet, "/watched-movies", true, http.StatusOK},
		{http.MethodGet, "/watchlist", true, http.StatusOK},
		{http.MethodGet, "/watchlist", false, http.StatusUnauthorized},
		{http.MethodPut, "/watchlist", true, http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", false, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
			require.NoError(t, err)
			if tc.auth {
				req.Header.Set("Authorization", bearer(t))
			}
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestHealthDegraded(t *testing.T) {
	r := Setup(handler.NewHandler(stubService{}), testConfig(), stubPinger{err: errors.New("down")})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded"}`, rec.Body.String())
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = 2
	r := Setup(handler.NewHandler(stubService{}), cfg, nil)

	codes := make([]int, 0, 3)
	for range 3 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/movies/popular", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
