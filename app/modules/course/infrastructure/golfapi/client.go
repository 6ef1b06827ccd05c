package golfapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	gamedomain "github.com/the-tour-club/skins/app/modules/game/domain"
	coursemetrics "github.com/the-tour-club/skins/internal/observability/metrics/course"
)

// Provider fetches course layouts from an external golf course API.
type Provider interface {
	SearchCourses(ctx context.Context, query string) ([]gamedomain.Course, error)
	GetCourse(ctx context.Context, id string) (*gamedomain.Course, error)
}

// Config controls the remote course client.
type Config struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	CacheTTL          time.Duration
	RequestsPerSecond float64
	Burst             int
}

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 15 * time.Minute
	defaultRate     = 2.0
	defaultBurst    = 5
)

// Client talks to the remote API with a rate limiter, a circuit breaker,
// and a TTL response cache in front of it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	cache      *ttlCache
	logger     *slog.Logger
	metrics    coursemetrics.CourseMetrics
}

// NewClient creates a remote course client. Zero config fields fall back
// to conservative defaults.
func NewClient(cfg Config, logger *slog.Logger, metrics coursemetrics.CourseMetrics) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRate
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "golfapi",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Course API circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		breaker:    breaker,
		cache:      newTTLCache(cacheTTL, time.Now),
		logger:     logger,
		metrics:    metrics,
	}
}

type courseSearchResponse struct {
	Courses []remoteCourse `json:"courses"`
}

type remoteCourse struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Holes    []remoteHole `json:"holes"`
}

type remoteHole struct {
	Number      int    `json:"number"`
	Par         int    `json:"par"`
	Handicap    int    `json:"handicap"`
	Distance    int    `json:"distance"`
	Description string `json:"description"`
}

// SearchCourses queries the remote API for courses matching query.
func (c *Client) SearchCourses(ctx context.Context, query string) ([]gamedomain.Course, error) {
	cacheKey := "search:" + query
	if cached, ok := c.cache.get(cacheKey); ok {
		if c.metrics != nil {
			c.metrics.RecordRemoteSearch(true)
		}
		return cached.([]gamedomain.Course), nil
	}
	if c.metrics != nil {
		c.metrics.RecordRemoteSearch(false)
	}

	var resp courseSearchResponse
	endpoint := fmt.Sprintf("%s/courses?q=%s", c.baseURL, url.QueryEscape(query))
	if err := c.doJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	courses := make([]gamedomain.Course, 0, len(resp.Courses))
	for _, rc := range resp.Courses {
		courses = append(courses, rc.toDomain())
	}
	c.cache.set(cacheKey, courses)
	return courses, nil
}

// GetCourse fetches a single course layout by its remote ID.
func (c *Client) GetCourse(ctx context.Context, id string) (*gamedomain.Course, error) {
	cacheKey := "course:" + id
	if cached, ok := c.cache.get(cacheKey); ok {
		course := cached.(gamedomain.Course)
		return &course, nil
	}

	var rc remoteCourse
	endpoint := fmt.Sprintf("%s/courses/%s", c.baseURL, url.PathEscape(id))
	if err := c.doJSON(ctx, endpoint, &rc); err != nil {
		return nil, err
	}

	course := rc.toDomain()
	c.cache.set(cacheKey, course)
	return &course, nil
}

func (c *Client) doJSON(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("course API request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("course API returned status %d", resp.StatusCode)
		}
		return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body.([]byte), out); err != nil {
		return fmt.Errorf("failed to decode course API response: %w", err)
	}
	return nil
}

func (rc remoteCourse) toDomain() gamedomain.Course {
	holes := make([]gamedomain.CourseHole, 0, len(rc.Holes))
	totalPar := 0
	totalDistance := 0
	for _, h := range rc.Holes {
		holes = append(holes, gamedomain.CourseHole{
			HoleNumber:  h.Number,
			Par:         h.Par,
			Handicap:    h.Handicap,
			Distance:    h.Distance,
			Description: h.Description,
		})
		totalPar += h.Par
		totalDistance += h.Distance
	}
	return gamedomain.Course{
		ID:            rc.ID,
		Name:          rc.Name,
		Location:      rc.Location,
		TotalPar:      totalPar,
		TotalDistance: totalDistance,
		Holes:         holes,
	}
}
