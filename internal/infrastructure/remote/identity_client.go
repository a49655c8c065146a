package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/you/storefront/domain"
)

// IdentityClient implements domain.IdentityClient against a JSON login endpoint
type IdentityClient struct {
	url      string
	client   *http.Client
	validate *validator.Validate
}

// NewIdentityClient creates a new identity client
func NewIdentityClient(url string, client *http.Client, validate *validator.Validate) *IdentityClient {
	return &IdentityClient{url: url, client: client, validate: validate}
}

// loginResponse is the user record plus token, as returned by the endpoint
type loginResponse struct {
	domain.User
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// Login implements domain.IdentityClient
func (c *IdentityClient) Login(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := do(ctx, c.client, req, "identity.login")
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" {
		return nil, fmt.Errorf("%w: response carries no token", domain.ErrMalformedUser)
	}
	if err := c.validate.Struct(resp.User); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedUser, err)
	}

	user := resp.User
	return &domain.LoginResult{User: &user, Token: token}, nil
}

var _ domain.IdentityClient = (*IdentityClient)(nil)
