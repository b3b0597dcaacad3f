package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestConsultSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/consult" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("auth header = %s", got)
		}

		var req ConsultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.CarModel != "BMW 5시리즈" {
			t.Errorf("car model = %s", req.CarModel)
		}

		json.NewEncoder(w).Encode(map[string]string{"text": "탁월한 선택입니다."})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 5*time.Second, zap.NewNop())

	got := c.Consult(context.Background(), ConsultRequest{
		CarModel: "BMW 5시리즈",
		CarSize:  "sedan",
		Coverage: "fullbody",
		Grade:    "transparent",
	})
	if got != "탁월한 선택입니다." {
		t.Errorf("Consult = %q", got)
	}
}

func TestConsultDegradesToFallback(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, "k", 5*time.Second, zap.NewNop())
			if got := c.Consult(context.Background(), ConsultRequest{}); got != FallbackMessage {
				t.Errorf("Consult = %q, want fallback", got)
			}
		})
	}
}

func TestConsultEmptyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"text": "  "})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", 5*time.Second, zap.NewNop())
	if got := c.Consult(context.Background(), ConsultRequest{}); got != EmptyResultMessage {
		t.Errorf("Consult = %q, want empty-result message", got)
	}
}

func TestConsultDisabled(t *testing.T) {
	c := NewClient("", "", 0, zap.NewNop())
	if c.Enabled() {
		t.Fatal("client without base URL must be disabled")
	}
	if got := c.Consult(context.Background(), ConsultRequest{}); got != FallbackMessage {
		t.Errorf("Consult = %q, want fallback", got)
	}
}
