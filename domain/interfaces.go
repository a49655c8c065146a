package domain

import "context"

// Storage keys used for the persisted session
const (
	TokenKey = "token"
	UserKey  = "user"
)

// KeyValueStore defines durable string storage for client state.
// Implementations give no atomicity across keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// IdentityClient defines the remote login call.
// Unsuccessful HTTP results are returned as *RemoteError; anything else is a transport error.
type IdentityClient interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
}

// CatalogClient defines the remote bulk catalog fetch
type CatalogClient interface {
	FetchAll(ctx context.Context) (*FetchResult, error)
}

// CredentialMatcher decides whether a credential pair is the built-in test pair
type CredentialMatcher interface {
	Matches(username, password string) bool
	Identity() LoginResult
}

// SessionStore defines the authentication state intents
type SessionStore interface {
	Snapshot() Session
	Login(ctx context.Context, username, password string) (Session, error)
	Logout(ctx context.Context) Session
	Subscribe(fn func(Session)) func()
}

// CatalogStore defines the catalog state intents
type CatalogStore interface {
	Snapshot() Catalog
	Fetch(ctx context.Context) (Catalog, error)
	Add(ctx context.Context, draft ProductDraft) Product
	Update(ctx context.Context, patch ProductPatch) (Catalog, bool)
	Delete(ctx context.Context, id int) Catalog
	Subscribe(fn func(Catalog)) func()
}
