// Package catalog talks to the external metadata catalog (a TMDB-compatible
// REST API). Every call degrades to "no data" on failure: methods return
// ok == false instead of an error and never retry.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/actuallystonmai/recommendation-engine/internal/config"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/logging"
	"github.com/actuallystonmai/recommendation-engine/internal/metrics"
)

// Sort orders accepted by Discover.
const (
	SortPopularityDesc  = "popularity.desc"
	SortVoteAverageDesc = "vote_average.desc"
)

// DiscoverQuery filters a catalog discovery listing.
type DiscoverQuery struct {
	// CategoryIDs are OR-ed together.
	CategoryIDs  []int
	MinVoteCount int
	SortBy       string
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	log        zerolog.Logger
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cb:         newBreaker("catalog", cfg),
		log:        logging.Component("catalog"),
	}
}

type resultsPayload struct {
	Results []map[string]any `json:"results"`
}

// Popular returns the catalog's current popular listing.
func (c *Client) Popular(ctx context.Context) ([]domain.Item, bool) {
	var p resultsPayload
	if !c.get(ctx, "popular", "/movie/popular", nil, &p) || p.Results == nil {
		return nil, false
	}
	return NormalizeAll(p.Results), true
}

// Search runs a title search.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Item, bool) {
	var p resultsPayload
	params := url.Values{"query": {query}}
	if !c.get(ctx, "search", "/search/movie", params, &p) || p.Results == nil {
		return nil, false
	}
	return NormalizeAll(p.Results), true
}

// Discover lists items tagged with any of the query's categories.
func (c *Client) Discover(ctx context.Context, q DiscoverQuery) ([]domain.Item, bool) {
	ids := make([]string, len(q.CategoryIDs))
	for i, id := range q.CategoryIDs {
		ids[i] = strconv.Itoa(id)
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortPopularityDesc
	}
	params := url.Values{
		"with_genres":    {strings.Join(ids, "|")},
		"vote_count.gte": {strconv.Itoa(q.MinVoteCount)},
		"sort_by":        {sortBy},
	}

	var p resultsPayload
	if !c.get(ctx, "discover", "/discover/movie", params, &p) || p.Results == nil {
		return nil, false
	}
	return NormalizeAll(p.Results), true
}

type creditsPayload struct {
	Cast []contributorPayload `json:"cast"`
	Crew []contributorPayload `json:"crew"`
}

type contributorPayload struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Character string `json:"character"`
	Job       string `json:"job"`
}

// Credits returns the cast and crew of an item.
func (c *Client) Credits(ctx context.Context, itemID int64) (*domain.Credits, bool) {
	if itemID <= 0 {
		return nil, false
	}
	var p creditsPayload
	if !c.get(ctx, "credits", fmt.Sprintf("/movie/%d/credits", itemID), nil, &p) {
		return nil, false
	}
	return &domain.Credits{
		Cast: toContributors(p.Cast),
		Crew: toContributors(p.Crew),
	}, true
}

func toContributors(in []contributorPayload) []domain.ContributorRef {
	out := make([]domain.ContributorRef, 0, len(in))
	for _, m := range in {
		out = append(out, domain.ContributorRef(m))
	}
	return out
}

type filmographyPayload struct {
	Cast []map[string]any `json:"cast"`
	Crew []map[string]any `json:"crew"`
}

// Filmography returns the works a contributor is credited on.
func (c *Client) Filmography(ctx context.Context, contributorID int64) (*domain.Filmography, bool) {
	if contributorID <= 0 {
		return nil, false
	}
	var p filmographyPayload
	if !c.get(ctx, "filmography", fmt.Sprintf("/person/%d/movie_credits", contributorID), nil, &p) {
		return nil, false
	}

	f := &domain.Filmography{Cast: NormalizeAll(p.Cast)}
	for _, raw := range p.Crew {
		item, ok := Normalize(raw)
		if !ok {
			continue
		}
		job, _ := raw["job"].(string)
		f.Crew = append(f.Crew, domain.CrewWork{Item: item, Job: job})
	}
	return f, true
}

// get performs one catalog request and decodes the body into out. It reports
// false on any transport, status, breaker or decoding failure.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, out any) bool {
	start := time.Now()
	defer func() {
		metrics.CatalogRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		c.fail(endpoint, "rejected", err)
		return false
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, path, params)
	})
	if err != nil {
		outcome := "error"
		if isBreakerRejection(err) {
			outcome = "rejected"
		}
		c.fail(endpoint, outcome, err)
		return false
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.fail(endpoint, "error", fmt.Errorf("decode %s: %w", path, err))
		return false
	}

	metrics.CatalogRequests.WithLabelValues(endpoint, "ok").Inc()
	return true
}

func (c *Client) do(ctx context.Context, path string, params url.Values) ([]byte, error) {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: path, Code: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return body, nil
}

func (c *Client) fail(endpoint, outcome string, err error) {
	metrics.CatalogRequests.WithLabelValues(endpoint, outcome).Inc()
	c.log.Warn().Str("endpoint", endpoint).Str("outcome", outcome).Err(err).Msg("catalog request failed")
}

// StatusError is a non-2xx catalog response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s: status %d", e.Path, e.Code)
}
