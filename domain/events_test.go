package domain

import (
	"testing"
	"time"
)

func TestNewStoreEvent(t *testing.T) {
	before := time.Now().UTC()
	e := NewStoreEvent(LoginEvent)

	if e.EventType != LoginEvent {
		t.Errorf("expected event type %s, got %s", LoginEvent, e.EventType)
	}
	if !e.Success {
		t.Error("expected new event to be successful")
	}
	if e.Metadata == nil {
		t.Fatal("expected metadata map to be initialized")
	}
	if e.Timestamp.Before(before) {
		t.Error("expected timestamp to be set to now")
	}
}

func TestStoreEvent_Builders(t *testing.T) {
	e := NewStoreEvent(ProductDeleteEvent).
		WithUsername("emilys").
		WithProduct(42).
		WithMetadata("total", 7).
		WithError("boom")

	if e.Username != "emilys" {
		t.Errorf("expected username emilys, got %s", e.Username)
	}
	if e.ProductID != 42 {
		t.Errorf("expected product id 42, got %d", e.ProductID)
	}
	if e.Metadata["total"] != 7 {
		t.Errorf("expected metadata total 7, got %v", e.Metadata["total"])
	}
	if e.Success {
		t.Error("expected WithError to mark the event as failed")
	}
	if e.ErrorMsg != "boom" {
		t.Errorf("expected error message boom, got %s", e.ErrorMsg)
	}
}
