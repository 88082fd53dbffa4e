package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func TestMiddleware(t *testing.T) {
	limiter := New(rate.Limit(0.001), 2)

	handler := limiter.Middleware(ClientAddress)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/header/events", nil)
		req.RemoteAddr = remoteAddr

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res.Code
	}

	expected := []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}
	for idx, e := range expected {
		if g := do("10.0.0.1:4242"); e != g {
			t.Errorf("request #%d: expected status '%v', got '%v'", idx, e, g)
		}
	}

	// Another port on the same host shares the bucket
	if e, g := http.StatusTooManyRequests, do("10.0.0.1:5353"); e != g {
		t.Errorf("same host: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNoContent, do("10.0.0.2:4242"); e != g {
		t.Errorf("other host: expected status '%v', got '%v'", e, g)
	}

	if e, g := http.StatusInternalServerError, do(""); e != g {
		t.Errorf("empty address: expected status '%v', got '%v'", e, g)
	}
}

func TestPrune(t *testing.T) {
	exhausted := New(0, 2)
	exhausted.Allow("10.0.0.1")

	if e, g := 1, exhausted.Prune(); e != g {
		t.Errorf("exhausted.Prune(): expected '%v', got '%v'", e, g)
	}

	refilled := New(rate.Limit(1e6), 1)
	refilled.Allow("10.0.0.1")
	refilled.Allow("10.0.0.2")

	time.Sleep(10 * time.Millisecond)

	if e, g := 0, refilled.Prune(); e != g {
		t.Errorf("refilled.Prune(): expected '%v', got '%v'", e, g)
	}

	// A pruned client starts over with a full bucket
	if !refilled.Allow("10.0.0.1") {
		t.Error("pruned client should be allowed")
	}
}
