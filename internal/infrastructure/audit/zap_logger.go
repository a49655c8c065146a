package audit

import (
	"context"

	"github.com/you/storefront/domain"
	"go.uber.org/zap"
)

// ZapEventLogger implements domain.EventLogger by writing one structured log line per event
type ZapEventLogger struct {
	log *zap.Logger
}

// NewZapEventLogger creates an event logger on top of log
func NewZapEventLogger(log *zap.Logger) *ZapEventLogger {
	return &ZapEventLogger{log: log.Named("events")}
}

// LogEvent implements domain.EventLogger
func (l *ZapEventLogger) LogEvent(ctx context.Context, event *domain.StoreEvent) error {
	fields := []zap.Field{
		zap.String("event_type", string(event.EventType)),
		zap.Bool("success", event.Success),
		zap.Time("timestamp", event.Timestamp),
	}
	if event.Username != "" {
		fields = append(fields, zap.String("username", event.Username))
	}
	if event.ProductID != 0 {
		fields = append(fields, zap.Int("product_id", event.ProductID))
	}
	if len(event.Metadata) > 0 {
		fields = append(fields, zap.Any("metadata", event.Metadata))
	}

	if !event.Success {
		fields = append(fields, zap.String("error", event.ErrorMsg))
		l.log.Warn("store event", fields...)
		return nil
	}
	l.log.Info("store event", fields...)
	return nil
}

var _ domain.EventLogger = (*ZapEventLogger)(nil)
