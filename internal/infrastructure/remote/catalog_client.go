package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/you/storefront/domain"
)

// CatalogClient implements domain.CatalogClient against a paged product listing,
// requesting every product in one page.
type CatalogClient struct {
	url      string
	client   *http.Client
	validate *validator.Validate
}

// NewCatalogClient creates a new catalog client
func NewCatalogClient(url string, client *http.Client, validate *validator.Validate) *CatalogClient {
	return &CatalogClient{url: url, client: client, validate: validate}
}

type catalogResponse struct {
	Products []json.RawMessage `json:"products"`
	Total    *int              `json:"total"`
}

// FetchAll implements domain.CatalogClient.
// Entries that do not decode or validate are dropped and counted in Rejected.
func (c *CatalogClient) FetchAll(ctx context.Context) (*domain.FetchResult, error) {
	u, err := url.Parse(c.url)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}
	q := u.Query()
	q.Set("limit", "0")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := do(ctx, c.client, req, "catalog.fetch_all")
	if err != nil {
		return nil, err
	}

	var resp catalogResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedCatalog, err)
	}
	if resp.Products == nil {
		return nil, fmt.Errorf("%w: missing products", domain.ErrMalformedCatalog)
	}

	result := &domain.FetchResult{Products: make([]domain.Product, 0, len(resp.Products))}
	for _, raw := range resp.Products {
		var p domain.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			result.Rejected++
			continue
		}
		if err := c.validate.Struct(p); err != nil {
			result.Rejected++
			continue
		}
		result.Products = append(result.Products, p)
	}

	if resp.Total != nil {
		result.Total = *resp.Total
	} else {
		result.Total = len(resp.Products)
	}
	return result, nil
}

var _ domain.CatalogClient = (*CatalogClient)(nil)
