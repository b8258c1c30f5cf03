package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestIDGenerated(t *testing.T) {
	s := New()

	var seen string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if seen == "" {
		t.Fatal("expected request ID in context")
	}

	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("expected request ID to be a valid UUID, got %q", seen)
	}

	if got := w.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("expected response header %q, got %q", seen, got)
	}
}

func TestRequestIDPreserved(t *testing.T) {
	s := New()

	want := uuid.New().String()

	var seen string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", want)
	w := httptest.NewRecorder()
	handler(w, req)

	if seen != want {
		t.Errorf("expected request ID %q to be preserved, got %q", want, seen)
	}
}

func TestRequestIDInvalidReplaced(t *testing.T) {
	s := New()

	var seen string
	handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	w := httptest.NewRecorder()
	handler(w, req)

	if seen == "not-a-uuid" {
		t.Error("expected invalid request ID to be replaced")
	}

	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("expected replacement request ID to be a valid UUID, got %q", seen)
	}
}

func TestPanicRecovery(t *testing.T) {
	s := New()

	handler := s.requestIDMiddleware(s.panicRecoveryMiddleware(func(_ http.ResponseWriter, _ *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestRateLimitHeaders(t *testing.T) {
	s := New()

	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if w.Header().Get(h) == "" {
			t.Errorf("expected %s header to be set", h)
		}
	}
}
