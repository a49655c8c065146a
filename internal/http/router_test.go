package httpx

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/you/storefront/domain"
	"github.com/you/storefront/internal/http/handlers"
	"github.com/you/storefront/internal/http/middleware"
	"github.com/you/storefront/internal/mocks"
	"github.com/you/storefront/internal/services"
	"go.uber.org/zap"
)

func TestBuildRouter_ProtectsCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	identity := mocks.NewMockIdentityClient()
	identity.LoginFunc = func(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
		return &domain.LoginResult{User: &domain.User{ID: 1, Username: creds.Username}, Token: "jwt"}, nil
	}
	sessions := services.NewSessionStore(context.Background(), identity, mocks.NewMockKeyValueStore(), nil, nil, zap.NewNop())
	catalog := services.NewCatalogStore(mocks.NewMockCatalogClient(), nil, zap.NewNop())

	r := BuildRouter(handlers.NewSessionHandlers(sessions), handlers.NewCatalogHandlers(catalog), sessions, zap.NewNop())

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := serve(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusUnauthorized, serve(http.MethodGet, "/catalog", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(http.MethodPost, "/catalog/products", `{"title":"x"}`).Code)

	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/session/login", `{"username":"emilys","password":"pw"}`).Code)
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/catalog", "").Code)
	assert.Equal(t, http.StatusCreated, serve(http.MethodPost, "/catalog/products", `{"title":"x"}`).Code)

	assert.Equal(t, http.StatusOK, serve(http.MethodPost, "/session/logout", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(http.MethodGet, "/catalog", "").Code)
}
