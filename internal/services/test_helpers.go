package services

import (
	"context"
	"testing"

	"github.com/you/storefront/domain"
	"github.com/you/storefront/internal/mocks"
	"go.uber.org/zap"
)

// createSessionStoreForTest creates a SessionStore with mock dependencies for testing
func createSessionStoreForTest(t *testing.T,
	identity domain.IdentityClient,
	storage domain.KeyValueStore,
	bypass domain.CredentialMatcher,
	events domain.EventLogger) *SessionStoreImpl {
	t.Helper()

	if identity == nil {
		identity = mocks.NewMockIdentityClient()
	}
	if storage == nil {
		storage = mocks.NewMockKeyValueStore()
	}
	if bypass == nil {
		bypass = mocks.NewMockCredentialMatcher()
	}
	if events == nil {
		events = mocks.NewMockEventLogger()
	}

	return NewSessionStore(context.Background(), identity, storage, bypass, events, zap.NewNop())
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:        1,
		Username:  "emilys",
		Email:     "emily.johnson@x.dummyjson.com",
		FirstName: "Emily",
		LastName:  "Johnson",
		Gender:    "female",
		Image:     "https://dummyjson.com/icon/emilys/128",
	}
}

// loginSucceeds configures the identity client to accept any credentials
func loginSucceeds(t *testing.T, identity *mocks.MockIdentityClient, token string) {
	t.Helper()

	identity.LoginFunc = func(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
		return &domain.LoginResult{User: createValidUser(t), Token: token}, nil
	}
}

// bypassMatcher returns a matcher accepting only testadmin/Test@123
func bypassMatcher(t *testing.T) *mocks.MockCredentialMatcher {
	t.Helper()

	m := mocks.NewMockCredentialMatcher()
	m.MatchesFunc = func(username, password string) bool {
		return username == "testadmin" && password == "Test@123"
	}
	m.IdentityFunc = func() domain.LoginResult {
		return domain.LoginResult{
			User: &domain.User{
				ID:        999,
				Username:  "testadmin",
				FirstName: "Test",
				LastName:  "Admin",
				Gender:    "male",
			},
			Token: "mock-jwt-token-for-test-admin",
		}
	}
	return m
}

// product creates a minimal valid product
func product(id int, title string) domain.Product {
	return domain.Product{ID: id, Title: title, Price: 10, Stock: 5, Brand: "Acme", Category: "misc"}
}

// fetchReturns configures the catalog client with a fixed response
func fetchReturns(client *mocks.MockCatalogClient, total int, products ...domain.Product) {
	client.FetchAllFunc = func(ctx context.Context) (*domain.FetchResult, error) {
		return &domain.FetchResult{Products: products, Total: total}, nil
	}
}

func ids(items []domain.Product) []int {
	out := make([]int, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
