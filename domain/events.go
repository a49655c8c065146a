package domain

import (
	"context"
	"time"
)

// StoreEventType defines the type of store event
type StoreEventType string

const (
	// Session events
	LoginEvent        StoreEventType = "LOGIN"
	LoginBypassEvent  StoreEventType = "LOGIN_BYPASS"
	LoginFailureEvent StoreEventType = "LOGIN_FAILED"
	LogoutEvent       StoreEventType = "LOGOUT"
	HydrateEvent      StoreEventType = "SESSION_HYDRATED"

	// Catalog events
	CatalogFetchEvent        StoreEventType = "CATALOG_FETCHED"
	CatalogFetchFailureEvent StoreEventType = "CATALOG_FETCH_FAILED"
	ProductAddEvent          StoreEventType = "PRODUCT_ADDED"
	ProductUpdateEvent       StoreEventType = "PRODUCT_UPDATED"
	ProductDeleteEvent       StoreEventType = "PRODUCT_DELETED"
)

// StoreEvent represents a committed store transition
type StoreEvent struct {
	EventType StoreEventType         `json:"event_type"`
	Username  string                 `json:"username,omitempty"`
	ProductID int                    `json:"product_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg  string                 `json:"error_msg,omitempty"`
	Success   bool                   `json:"success"`
}

// EventLogger defines where store events are written
type EventLogger interface {
	LogEvent(ctx context.Context, event *StoreEvent) error
}

// NewStoreEvent creates a new store event with common fields populated
func NewStoreEvent(eventType StoreEventType) *StoreEvent {
	return &StoreEvent{
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithError marks the event as failed with the given message
func (e *StoreEvent) WithError(msg string) *StoreEvent {
	e.Success = false
	e.ErrorMsg = msg
	return e
}

// WithUsername sets the username field
func (e *StoreEvent) WithUsername(username string) *StoreEvent {
	e.Username = username
	return e
}

// WithProduct sets the product id field
func (e *StoreEvent) WithProduct(id int) *StoreEvent {
	e.ProductID = id
	return e
}

// WithMetadata adds metadata to the event
func (e *StoreEvent) WithMetadata(key string, value interface{}) *StoreEvent {
	e.Metadata[key] = value
	return e
}
