package setup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/infratech/site/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlerFromConfig(t *testing.T) {
	conf := config.NewDefaultConfig()
	require.NoError(t, config.Interpolate(conf))

	conf.RateLimit.Burst = 1
	conf.RateLimit.Rate = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, err := NewHandlerFromConfig(ctx, conf)
	require.NoError(t, err)

	type testCase struct {
		Method string
		Path   string
		Body   string
		Status int
	}

	testCases := []testCase{
		{Method: http.MethodGet, Path: "/", Status: http.StatusOK},
		{Method: http.MethodGet, Path: "/services", Status: http.StatusOK},
		{Method: http.MethodGet, Path: "/healthz", Status: http.StatusOK},
		{Method: http.MethodGet, Path: "/static/styles.css", Status: http.StatusOK},
		{Method: http.MethodGet, Path: "/metrics", Status: http.StatusOK},
		{Method: http.MethodGet, Path: "/debug/pprof/", Status: http.StatusNotFound},
		{Method: http.MethodPost, Path: "/header/events", Body: "event=open", Status: http.StatusOK},
		{Method: http.MethodPost, Path: "/header/events", Body: "event=open", Status: http.StatusTooManyRequests},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(tc.Method, tc.Path, strings.NewReader(tc.Body))
		if tc.Body != "" {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		assert.Equal(t, tc.Status, res.Code, "%s %s", tc.Method, tc.Path)
	}
}

func TestRateLimitForwardedHeaders(t *testing.T) {
	type testCase struct {
		TrustProxy     bool
		ExpectAccepted int
	}

	testCases := []testCase{
		// Spoofed headers from a single peer share one bucket
		{TrustProxy: false, ExpectAccepted: 1},
		// Behind a trusted proxy, each forwarded address gets its own bucket
		{TrustProxy: true, ExpectAccepted: 10},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			conf := config.NewDefaultConfig()
			require.NoError(t, config.Interpolate(conf))

			conf.HTTP.TrustProxy = config.InterpolatedBool(tc.TrustProxy)
			conf.RateLimit.Burst = 1
			conf.RateLimit.Rate = 0

			handler, err := NewHandlerFromConfig(ctx, conf)
			require.NoError(t, err)

			accepted := 0
			for i := range 10 {
				req := httptest.NewRequest(http.MethodPost, "/header/events", strings.NewReader("event=open"))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d", i+1))
				req.RemoteAddr = "203.0.113.7:4000"

				res := httptest.NewRecorder()
				handler.ServeHTTP(res, req)

				if res.Code == http.StatusOK {
					accepted++
				}
			}

			assert.Equal(t, tc.ExpectAccepted, accepted)
		})
	}
}

func TestCreateFromConfigOnce(t *testing.T) {
	calls := 0

	factory := createFromConfigOnce(func(ctx context.Context, conf *config.Config) (int, error) {
		calls++
		return calls, nil
	})

	for range 3 {
		value, err := factory(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, value)
	}

	assert.Equal(t, 1, calls)
}
