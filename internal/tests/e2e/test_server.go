package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/you/storefront/internal/app"
	"github.com/you/storefront/internal/config"
)

// TestServer wraps a fully wired container behind an HTTP test server
type TestServer struct {
	Server    *httptest.Server
	Container *app.Container
	Config    *config.Config
	Client    *http.Client
}

// Response is the decoded JSON envelope
type Response struct {
	Status int             `json:"-"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// NewTestServer builds the container from cfg and starts serving it
func NewTestServer(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	container, err := app.NewContainer(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	server := httptest.NewServer(container.Handler())
	t.Cleanup(func() {
		server.Close()
		container.Close()
	})

	return &TestServer{
		Server:    server,
		Container: container,
		Config:    cfg,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Do sends a JSON request and decodes the envelope
func (s *TestServer) Do(t *testing.T, method, path string, body interface{}) Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, s.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := Response{Status: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("Failed to decode response of %s %s: %v", method, path, err)
	}
	return out
}
