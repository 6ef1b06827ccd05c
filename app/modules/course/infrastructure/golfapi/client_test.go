package golfapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coursemetrics "github.com/the-tour-club/skins/internal/observability/metrics/course"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int64) {
	t.Helper()
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL:           server.URL,
		APIKey:            "test-key",
		RequestsPerSecond: 1000,
		Burst:             1000,
	}, slog.Default(), coursemetrics.NoOpMetrics{})
	return client, &calls
}

func TestSearchCourses(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "pebble", r.URL.Query().Get("q"))
		w.Write([]byte(`{"courses":[{"id":"remote-1","name":"Pebble Creek","location":"TX","holes":[
			{"number":1,"par":4,"handicap":1,"distance":400,"description":"Opener"},
			{"number":2,"par":3,"handicap":2,"distance":180,"description":"Short"}
		]}]}`))
	})

	courses, err := client.SearchCourses(context.Background(), "pebble")
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "remote-1", courses[0].ID)
	assert.Equal(t, "Pebble Creek", courses[0].Name)
	assert.Equal(t, 7, courses[0].TotalPar)
	assert.Equal(t, 580, courses[0].TotalDistance)
	require.Len(t, courses[0].Holes, 2)
	assert.Equal(t, 1, courses[0].Holes[0].HoleNumber)

	// Second call with the same query is served from the cache.
	_, err = client.SearchCourses(context.Background(), "pebble")
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(calls))
}

func TestGetCourse(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courses/remote-1", r.URL.Path)
		w.Write([]byte(`{"id":"remote-1","name":"Pebble Creek","location":"TX","holes":[
			{"number":1,"par":5,"handicap":1,"distance":520,"description":"Long"}
		]}`))
	})

	course, err := client.GetCourse(context.Background(), "remote-1")
	require.NoError(t, err)
	assert.Equal(t, "Pebble Creek", course.Name)
	assert.Equal(t, 5, course.TotalPar)

	_, err = client.GetCourse(context.Background(), "remote-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(calls))
}

func TestGetCourseServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetCourse(context.Background(), "remote-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestCircuitBreakerOpensAfterRepeatedFailures(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	for i := 0; i < 5; i++ {
		_, err := client.SearchCourses(context.Background(), "anything")
		require.Error(t, err)
	}

	// The breaker is open now; the request never reaches the server.
	_, err := client.SearchCourses(context.Background(), "anything")
	require.Error(t, err)
	assert.Equal(t, int64(5), atomic.LoadInt64(calls))
}

func TestRateLimiterRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"courses":[]}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL:           server.URL,
		RequestsPerSecond: 0.001,
		Burst:             1,
	}, slog.Default(), coursemetrics.NoOpMetrics{})

	// First request consumes the only token.
	_, err := client.SearchCourses(context.Background(), "one")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.SearchCourses(ctx, "two")
	require.Error(t, err)
}
