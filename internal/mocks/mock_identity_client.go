package mocks

import (
	"context"
	"errors"

	"github.com/you/storefront/domain"
)

// MockIdentityClient implements domain.IdentityClient interface for testing
type MockIdentityClient struct {
	LoginFunc func(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error)
}

// NewMockIdentityClient creates a new MockIdentityClient with default behaviors
func NewMockIdentityClient() *MockIdentityClient {
	return &MockIdentityClient{}
}

// Login performs a login
func (m *MockIdentityClient) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, creds)
	}
	// Default behavior: transport failure
	return nil, errors.New("mock identity client: no LoginFunc configured")
}

// Compile-time interface compliance verification
var _ domain.IdentityClient = (*MockIdentityClient)(nil)
