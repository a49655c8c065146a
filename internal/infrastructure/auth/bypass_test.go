package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBypassMatcher_Matches(t *testing.T) {
	m, err := NewBypassMatcher("testadmin", "Test@123", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"exact credentials", "testadmin", "Test@123", true},
		{"wrong password", "testadmin", "test@123", false},
		{"wrong username", "TestAdmin", "Test@123", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.username, tt.password))
		})
	}
}

func TestBypassMatcher_Identity(t *testing.T) {
	m, err := NewBypassMatcher("testadmin", "Test@123", bcrypt.MinCost)
	require.NoError(t, err)

	id := m.Identity()
	require.NotNil(t, id.User)
	assert.Equal(t, 999, id.User.ID)
	assert.Equal(t, "testadmin", id.User.Username)
	assert.Equal(t, "Test", id.User.FirstName)
	assert.Equal(t, "Admin", id.User.LastName)
	assert.Equal(t, "male", id.User.Gender)
	assert.Equal(t, BypassToken, id.Token)

	id.User.ID = 1
	assert.Equal(t, 999, m.Identity().User.ID)
}

func TestBypassMatcher_IdentityIgnoresConfiguredUsername(t *testing.T) {
	m, err := NewBypassMatcher("alice", "Test@123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, m.Matches("alice", "Test@123"))
	assert.False(t, m.Matches("testadmin", "Test@123"))

	id := m.Identity()
	require.NotNil(t, id.User)
	assert.Equal(t, BypassUsername, id.User.Username)
	assert.Equal(t, 999, id.User.ID)
}

func TestBypassMatcher_DoesNotKeepPlaintext(t *testing.T) {
	m, err := NewBypassMatcher("testadmin", "Test@123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotContains(t, string(m.hash), "Test@123")
}

func TestNoBypass(t *testing.T) {
	assert.False(t, NoBypass{}.Matches("testadmin", "Test@123"))
}
