package middleware_test

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todocore/internal/adapters/middleware"
)

func TestRequestIDMintsWhenAbsent(t *testing.T) {
	var seen string
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatalf("expected a minted request id")
	}
	if echoed := resp.Header().Get(middleware.RequestIDHeader); echoed != seen {
		t.Fatalf("response header %q does not match context id %q", echoed, seen)
	}
}

func TestRequestIDPreservesClientValue(t *testing.T) {
	var seen string
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-chosen")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "client-chosen" {
		t.Fatalf("client id not preserved: %q", seen)
	}
}

func TestLoggingEmitsOneLinePerRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	handler := middleware.RequestID(middleware.Logging(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/todos/", nil))

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "GET /todos/ 418 ") {
		t.Fatalf("unexpected log line: %q", line)
	}
	if !strings.Contains(line, "request_id=") || strings.HasSuffix(line, "request_id=") {
		t.Fatalf("missing request id in log line: %q", line)
	}
}
