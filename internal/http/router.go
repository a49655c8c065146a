package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/you/storefront/domain"
	"github.com/you/storefront/internal/http/handlers"
	"github.com/you/storefront/internal/http/middleware"
	"go.uber.org/zap"
)

func BuildRouter(sh *handlers.SessionHandlers, ch *handlers.CatalogHandlers, sessions domain.SessionStore, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	session := r.Group("/session")
	session.GET("", sh.Get)
	session.POST("/login", sh.Login)
	session.POST("/logout", sh.Logout)

	catalog := r.Group("/catalog").Use(middleware.RequireSession(sessions))
	catalog.GET("", ch.Get)
	catalog.POST("/fetch", ch.Fetch)
	catalog.POST("/products", ch.Create)
	catalog.PATCH("/products/:id", ch.Update)
	catalog.DELETE("/products/:id", ch.Delete)

	return r
}
