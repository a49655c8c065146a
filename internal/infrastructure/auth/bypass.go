package auth

import (
	"fmt"

	"github.com/you/storefront/domain"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BypassToken is the token issued with the bypass identity
	BypassToken = "mock-jwt-token-for-test-admin"
	// BypassUsername is the username of the bypass identity, whatever credential matched
	BypassUsername = "testadmin"
)

// BypassMatcher implements domain.CredentialMatcher for the fixed test-admin login.
// The configured password is kept only as a bcrypt hash.
type BypassMatcher struct {
	username string
	hash     []byte
}

// NewBypassMatcher hashes password with the given bcrypt cost (bcrypt.DefaultCost when zero)
func NewBypassMatcher(username, password string, cost int) (*BypassMatcher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash bypass password: %w", err)
	}
	return &BypassMatcher{username: username, hash: hash}, nil
}

// Matches implements domain.CredentialMatcher
func (m *BypassMatcher) Matches(username, password string) bool {
	if username != m.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(m.hash, []byte(password)) == nil
}

// Identity implements domain.CredentialMatcher
func (m *BypassMatcher) Identity() domain.LoginResult {
	return domain.LoginResult{
		User: &domain.User{
			ID:        999,
			Username:  BypassUsername,
			FirstName: "Test",
			LastName:  "Admin",
			Gender:    "male",
		},
		Token: BypassToken,
	}
}

// NoBypass never matches
type NoBypass struct{}

// Matches implements domain.CredentialMatcher
func (NoBypass) Matches(string, string) bool { return false }

// Identity implements domain.CredentialMatcher
func (NoBypass) Identity() domain.LoginResult { return domain.LoginResult{} }

var (
	_ domain.CredentialMatcher = (*BypassMatcher)(nil)
	_ domain.CredentialMatcher = NoBypass{}
)
