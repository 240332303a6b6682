package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		status    int
		body      string
		wantLevel string
		wantSize  string
	}{
		{name: "GET 200", method: http.MethodGet, path: "/", status: http.StatusOK, body: "OK", wantLevel: "info", wantSize: `"size":2`},
		{name: "POST 400", method: http.MethodPost, path: "/encrypt", status: http.StatusBadRequest, body: "bad", wantLevel: "warn", wantSize: `"size":3`},
		{name: "GET 500", method: http.MethodGet, path: "/generate_key", status: http.StatusInternalServerError, wantLevel: "error", wantSize: `"size":0`},
		{name: "query kept in uri", method: http.MethodGet, path: "/download/a.enc?x=1", status: http.StatusOK, wantLevel: "info", wantSize: `"size":0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			(&Handler{}).withLogging(next).ServeHTTP(rec, req)

			out := buf.String()
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, out, `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, out, `"method":"`+tt.method+`"`)
			assert.Contains(t, out, `"uri":"`+tt.path+`"`)
			assert.Contains(t, out, `"duration":`)
			assert.Contains(t, out, tt.wantSize)
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	(&Handler{}).withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("abc"))
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 5, w.size)
	assert.Same(t, rec, w.Unwrap())
}
