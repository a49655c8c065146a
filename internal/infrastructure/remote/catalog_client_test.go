package remote

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/you/storefront/domain"
)

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "0", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCatalogClient_FetchAll(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantIDs      []int
		wantTotal    int
		wantRejected int
		wantErr      error
	}{
		{
			name:      "all valid",
			status:    http.StatusOK,
			body:      `{"products":[{"id":1,"title":"Phone","price":9.5},{"id":2,"title":"Laptop"}],"total":194}`,
			wantIDs:   []int{1, 2},
			wantTotal: 194,
		},
		{
			name:         "malformed entries quarantined",
			status:       http.StatusOK,
			body:         `{"products":[{"id":1,"title":"Phone"},{"id":"x"},{"title":"no id"},{"id":3,"title":""}],"total":4}`,
			wantIDs:      []int{1},
			wantTotal:    4,
			wantRejected: 3,
		},
		{
			name:      "missing total uses length",
			status:    http.StatusOK,
			body:      `{"products":[{"id":7,"title":"Watch"}]}`,
			wantIDs:   []int{7},
			wantTotal: 1,
		},
		{
			name:      "empty list",
			status:    http.StatusOK,
			body:      `{"products":[],"total":0}`,
			wantIDs:   []int{},
			wantTotal: 0,
		},
		{
			name:    "missing products",
			status:  http.StatusOK,
			body:    `{"total":3}`,
			wantErr: domain.ErrMalformedCatalog,
		},
		{
			name:    "not json",
			status:  http.StatusOK,
			body:    `oops`,
			wantErr: domain.ErrMalformedCatalog,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newCatalogServer(t, tt.status, tt.body)
			client := NewCatalogClient(srv.URL+"/products", NewHTTPClient(time.Second), validator.New())

			res, err := client.FetchAll(t.Context())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			ids := make([]int, 0, len(res.Products))
			for _, p := range res.Products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, res.Total)
			assert.Equal(t, tt.wantRejected, res.Rejected)
		})
	}
}

func TestCatalogClient_RemoteFailure(t *testing.T) {
	srv := newCatalogServer(t, http.StatusServiceUnavailable, `{"message":"maintenance"}`)
	client := NewCatalogClient(srv.URL, NewHTTPClient(time.Second), validator.New())

	_, err := client.FetchAll(t.Context())

	var remote *domain.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, http.StatusServiceUnavailable, remote.StatusCode)
	assert.Equal(t, "maintenance", remote.Message)
}
