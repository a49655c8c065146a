package mocks

import "github.com/you/storefront/domain"

// MockCredentialMatcher implements domain.CredentialMatcher interface for testing
type MockCredentialMatcher struct {
	MatchesFunc  func(username, password string) bool
	IdentityFunc func() domain.LoginResult
}

// NewMockCredentialMatcher creates a new MockCredentialMatcher with default behaviors
func NewMockCredentialMatcher() *MockCredentialMatcher {
	return &MockCredentialMatcher{}
}

// Matches checks a credential pair
func (m *MockCredentialMatcher) Matches(username, password string) bool {
	if m.MatchesFunc != nil {
		return m.MatchesFunc(username, password)
	}
	// Default behavior: never matches
	return false
}

// Identity returns the identity issued on a match
func (m *MockCredentialMatcher) Identity() domain.LoginResult {
	if m.IdentityFunc != nil {
		return m.IdentityFunc()
	}
	return domain.LoginResult{}
}

// Compile-time interface compliance verification
var _ domain.CredentialMatcher = (*MockCredentialMatcher)(nil)
