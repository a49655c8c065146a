package mocks

import (
	"context"

	"github.com/you/storefront/domain"
)

// MockCatalogClient implements domain.CatalogClient interface for testing
type MockCatalogClient struct {
	FetchAllFunc func(ctx context.Context) (*domain.FetchResult, error)
}

// NewMockCatalogClient creates a new MockCatalogClient with default behaviors
func NewMockCatalogClient() *MockCatalogClient {
	return &MockCatalogClient{}
}

// FetchAll fetches the full catalog
func (m *MockCatalogClient) FetchAll(ctx context.Context) (*domain.FetchResult, error) {
	if m.FetchAllFunc != nil {
		return m.FetchAllFunc(ctx)
	}
	// Default behavior: empty catalog
	return &domain.FetchResult{Products: []domain.Product{}}, nil
}

// Compile-time interface compliance verification
var _ domain.CatalogClient = (*MockCatalogClient)(nil)
