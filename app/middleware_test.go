package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMiddlewareApp() *application {
	return &application{
		config: &Config{
			TrustedOrigins: []string{"http://localhost:5173"},
		},
		logger: slog.New(slog.NewTextHandler(os.Stdout, nil)),
	}
}

func TestRecoverPanic(t *testing.T) {
	app := testMiddlewareApp()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	app.recoverPanic(next).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}

func TestEnableCORS(t *testing.T) {
	app := testMiddlewareApp()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testCases := []struct {
		name           string
		origin         string
		expectedOrigin string
	}{
		{
			name:           "trusted origin",
			origin:         "http://localhost:5173",
			expectedOrigin: "http://localhost:5173",
		},
		{
			name:           "untrusted origin",
			origin:         "http://evil.example.com",
			expectedOrigin: "",
		},
		{
			name:           "no origin",
			origin:         "",
			expectedOrigin: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.origin != "" {
				r.Header.Set("Origin", tc.origin)
			}

			app.enableCORS(next).ServeHTTP(rr, r)

			assert.Equal(t, tc.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestEnableCORSPreflight(t *testing.T) {
	app := testMiddlewareApp()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight request should not reach the next handler")
	})

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodOptions, "/api/posts/hi", nil)
	r.Header.Set("Origin", "http://localhost:5173")
	r.Header.Set("Access-Control-Request-Method", http.MethodPut)

	app.enableCORS(next).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OPTIONS, PUT, DELETE", rr.Header().Get("Access-Control-Allow-Methods"))
}
