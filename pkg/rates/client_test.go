package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestUSDTKRWFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tether":{"krw":1392.5}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1450, 5*time.Second, zap.NewNop())
	if got := c.USDTKRW(context.Background()); got != 1392.5 {
		t.Errorf("rate = %v, want 1392.5", got)
	}
}

func TestUSDTKRWFallsBackToLastKnown(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"tether":{"krw":1400}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1450, 5*time.Second, zap.NewNop())

	if got := c.USDTKRW(context.Background()); got != 1400 {
		t.Fatalf("first rate = %v", got)
	}

	fail.Store(true)
	if got := c.USDTKRW(context.Background()); got != 1400 {
		t.Errorf("rate after outage = %v, want last known 1400", got)
	}
}

func TestUSDTKRWStaticFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1450, 5*time.Second, zap.NewNop())
	if got := c.USDTKRW(context.Background()); got != 1450 {
		t.Errorf("rate = %v, want static fallback 1450", got)
	}
}
