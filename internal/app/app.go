package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/you/storefront/internal/config"
	httpx "github.com/you/storefront/internal/http"
	"github.com/you/storefront/internal/http/handlers"
	"github.com/you/storefront/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Handler builds the intent router on top of the container
func (c *Container) Handler() http.Handler {
	sessionH := handlers.NewSessionHandlers(c.Sessions)
	catalogH := handlers.NewCatalogHandlers(c.Products)
	return httpx.BuildRouter(sessionH, catalogH, c.Sessions, c.Log.Named("http"))
}

func Run(cfg *config.Config) error {
	log, err := logger.New(&logger.Config{
		Level:       cfg.LogLevel,
		ServiceName: "storefront",
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer container.Close()

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: container.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
