package middlewares_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mw "bookworm/internal/api/middlewares"
)

func TestBodySizeLimit_RejectsOversizedPost(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "64")

	wrapped := mw.BodySizeLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := io.ReadAll(r.Body)
		if err == nil {
			t.Error("expected read error for oversized body")
		}
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))

	body := strings.NewReader(strings.Repeat("x", 128))
	req := httptest.NewRequest(http.MethodPost, "/api/books", body)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)
}

func TestBodySizeLimit_AllowsSmallPost(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "64")

	wrapped := mw.BodySizeLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("unexpected read error: %v", err)
		}
		if string(b) != "hello" {
			t.Errorf("body mangled: %q", b)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader("hello"))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBodySizeLimit_IgnoresGet(t *testing.T) {
	t.Setenv("MAX_BODY_SIZE", "1")

	wrapped := mw.BodySizeLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
