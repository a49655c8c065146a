package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrLoginFailed       = errors.New("login failed")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrMalformedUser     = errors.New("malformed user record")
	ErrIncompleteSession = errors.New("persisted session is incomplete")
)

// Catalog errors
var (
	ErrFetchFailed      = errors.New("catalog fetch failed")
	ErrMalformedCatalog = errors.New("malformed catalog response")
	ErrProductNotFound  = errors.New("product not found")
)

// Storage errors
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnknownDriver      = errors.New("unknown storage driver")
)

// Default user-facing messages
const (
	DefaultLoginMessage   = "Login failed"
	DefaultNetworkMessage = "Network error"
	DefaultFetchMessage   = "Failed to fetch products"
)

// RemoteError is an unsuccessful HTTP result from a remote endpoint
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote returned status %d: %s", e.StatusCode, e.Message)
}

// MessageOr returns the user-facing message carried by err, or def when there is none.
// A RemoteError yields the server message; any other error yields its own text.
func MessageOr(err error, def string) string {
	if err == nil {
		return def
	}
	var remote *RemoteError
	if errors.As(err, &remote) {
		if remote.Message != "" {
			return remote.Message
		}
		return def
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return def
}
