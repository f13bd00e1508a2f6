//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const RequestIDHeader = "X-Request-ID"

type RequestOption func(*http.Request)

func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// WithRequestID pins the id the logging middleware would otherwise generate.
func WithRequestID(id string) RequestOption {
	return WithHeader(RequestIDHeader, id)
}

// PerformRequest encodes body as JSON when it is non-nil and serves the request through router.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return serve(router, req, opts)
}

// PerformRawRequest sends raw as the JSON body, for payloads that cannot be built from a Go value.
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, raw string, opts ...RequestOption) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return serve(router, req, opts)
}

func serve(router *gin.Engine, req *http.Request, opts []RequestOption) *httptest.ResponseRecorder {
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
