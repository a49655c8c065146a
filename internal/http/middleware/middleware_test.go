package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/storefront/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesNew(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	headerID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, w.Body.String())
}

func TestRequestID_UsesExisting(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)

	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "existing-request-id-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "existing-request-id-123", w.Body.String())
}

func TestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{"success", http.StatusOK, zapcore.InfoLevel},
		{"client error", http.StatusNotFound, zapcore.WarnLevel},
		{"server error", http.StatusBadGateway, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.Use(RequestID(), Logger(zap.New(core)))
			r.GET("/test", func(c *gin.Context) { c.Status(tt.status) })
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?x=1", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
			fields := entries[0].ContextMap()
			assert.Equal(t, "/test", fields["path"])
			assert.Equal(t, "x=1", fields["query"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}

type fakeSessions struct {
	snap domain.Session
}

func (f fakeSessions) Snapshot() domain.Session {
	return f.snap
}

func (f fakeSessions) Login(context.Context, string, string) (domain.Session, error) {
	return f.snap, nil
}

func (f fakeSessions) Logout(context.Context) domain.Session {
	return f.snap
}

func (f fakeSessions) Subscribe(func(domain.Session)) func() {
	return func() {}
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name       string
		snap       domain.Session
		wantStatus int
	}{
		{"anonymous", domain.Session{Status: domain.StatusIdle}, http.StatusUnauthorized},
		{"token without user", domain.Session{Token: "jwt"}, http.StatusUnauthorized},
		{"authenticated", domain.Session{Token: "jwt", User: &domain.User{ID: 1, Username: "emilys"}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)

			r.Use(RequireSession(fakeSessions{snap: tt.snap}))
			r.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, c.GetString(UsernameKey))
			})
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "emilys", w.Body.String())
			} else {
				assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
			}
		})
	}
}
