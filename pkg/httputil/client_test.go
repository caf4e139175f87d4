package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"demo","count":3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), nil)
	var got struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := c.GetJSON(context.Background(), srv.URL, &got); err != nil {
		t.Fatalf("GetJSON() failed: %v", err)
	}
	if got.Name != "demo" || got.Count != 3 {
		t.Errorf("GetJSON() = %+v, want {demo 3}", got)
	}
}

func TestClientGetJSONRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`"ok"`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), nil)
	var got string

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.GetJSON(ctx, srv.URL, &got); err != nil {
		t.Fatalf("GetJSON() failed: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("server called %d times, want 2", calls.Load())
	}
}

func TestClientGetJSONDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), nil)
	var got string
	if err := c.GetJSON(context.Background(), srv.URL, &got); err == nil {
		t.Fatal("GetJSON() should fail on 404")
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1 (no retry on 4xx)", calls.Load())
	}
}

func TestClientGetJSONUsesCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"v":1}`))
	}))
	defer srv.Close()

	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	c := NewClient(srv.Client(), cache)

	var first, second map[string]int
	if err := c.GetJSON(context.Background(), srv.URL, &first); err != nil {
		t.Fatalf("first GetJSON() failed: %v", err)
	}
	if err := c.GetJSON(context.Background(), srv.URL, &second); err != nil {
		t.Fatalf("second GetJSON() failed: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1 (second read from cache)", calls.Load())
	}
	if second["v"] != 1 {
		t.Errorf("cached value = %v, want 1", second["v"])
	}
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return context.DeadlineExceeded
	})
	if err != context.DeadlineExceeded {
		t.Errorf("got %v, want DeadlineExceeded", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	calls := 0
	wrapped := &RetryableError{Err: context.DeadlineExceeded}
	err := Retry(context.Background(), 3, time.Millisecond, func() error {
		calls++
		return wrapped
	})
	if err != wrapped {
		t.Errorf("got %v, want last retryable error", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}
