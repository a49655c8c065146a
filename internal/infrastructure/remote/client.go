package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/you/storefront/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/you/storefront/internal/infrastructure/remote"

// maxBodyBytes caps how much of a response body is read
const maxBodyBytes = 32 << 20

// NewHTTPClient returns an http.Client with the configured transport timeout
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// errorBody is the error envelope returned by the remote API
type errorBody struct {
	Message string `json:"message"`
}

// do sends req and returns the body of a 2xx response.
// Non-2xx responses become *domain.RemoteError.
func do(ctx context.Context, client *http.Client, req *http.Request, spanName string) ([]byte, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.String()),
		),
	)
	defer span.End()

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if err := json.Unmarshal(body, &eb); err != nil {
			err = fmt.Errorf("failed to decode error response (status %d): %w", resp.StatusCode, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		remoteErr := &domain.RemoteError{StatusCode: resp.StatusCode, Message: eb.Message}
		span.SetStatus(codes.Error, remoteErr.Error())
		return nil, remoteErr
	}

	span.SetStatus(codes.Ok, "")
	return body, nil
}
