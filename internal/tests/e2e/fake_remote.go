package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/you/storefront/domain"
)

// FakeRemote serves the identity and catalog endpoints
type FakeRemote struct {
	Server *httptest.Server

	mu       sync.Mutex
	users    map[string]string
	products []domain.Product
	total    int
	down     bool
	logins   int
	fetches  int
}

// NewFakeRemote starts a fake remote with one known user and the given products
func NewFakeRemote(t *testing.T, products []domain.Product) *FakeRemote {
	t.Helper()

	f := &FakeRemote{
		users:    map[string]string{"emilys": "emilyspass"},
		products: products,
		total:    len(products),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", f.login)
	mux.HandleFunc("/products", f.list)
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// IdentityURL returns the login endpoint
func (f *FakeRemote) IdentityURL() string { return f.Server.URL + "/auth/login" }

// CatalogURL returns the product listing endpoint
func (f *FakeRemote) CatalogURL() string { return f.Server.URL + "/products" }

// SetDown makes every endpoint answer 503
func (f *FakeRemote) SetDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

// Counts returns how many login and fetch calls were served
func (f *FakeRemote) Counts() (logins, fetches int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.logins, f.fetches
}

func (f *FakeRemote) login(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++

	if f.down {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "Service unavailable"})
		return
	}

	var creds domain.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid body"})
		return
	}
	if pw, ok := f.users[creds.Username]; !ok || pw != creds.Password {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":          1,
		"username":    creds.Username,
		"email":       "emily.johnson@x.dummyjson.com",
		"firstName":   "Emily",
		"lastName":    "Johnson",
		"gender":      "female",
		"image":       "https://dummyjson.com/icon/emilys/128",
		"accessToken": "access-" + creds.Username,
	})
}

func (f *FakeRemote) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++

	if f.down {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "Service unavailable"})
		return
	}
	if r.URL.Query().Get("limit") != "0" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "expected limit=0"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"products": f.products, "total": f.total})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
