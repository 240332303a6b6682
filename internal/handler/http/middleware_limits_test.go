package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithBodyLimit(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		body       string
		wantStatus int
	}{
		{name: "under limit", limit: 10, body: "12345", wantStatus: http.StatusOK},
		{name: "declared length over limit", limit: 4, body: "12345", wantStatus: http.StatusRequestEntityTooLarge},
		{name: "no limit", limit: 0, body: strings.Repeat("x", 1000), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{maxUploadSize: tt.limit}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			h.withBodyLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestWithBodyLimit_StreamedBody covers bodies without a declared length,
// which are cut by MaxBytesReader while being read.
func TestWithBodyLimit_StreamedBody(t *testing.T) {
	h := &Handler{maxUploadSize: 4}

	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})

	req := httptest.NewRequest(http.MethodPost, "/encrypt", io.NopCloser(strings.NewReader("123456789")))
	req.ContentLength = -1
	h.withBodyLimit(next).ServeHTTP(httptest.NewRecorder(), req)

	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, readErr, &tooLarge)
}

func TestWithSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	withSecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
}
