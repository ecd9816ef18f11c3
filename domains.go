package client

import (
	"context"
	"net/http"
)

func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	raw, err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/domains",
	})
	if err != nil {
		return nil, err
	}

	var result []Domain
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetDomain fetches a domain by ID or name.
func (c *Client) GetDomain(ctx context.Context, domainID string) (*Domain, error) {
	if domainID == "" {
		return nil, validationError("domain", "Domain ID is required")
	}

	raw, err := c.do(ctx, apiRequest{
		method:     http.MethodGet,
		path:       "/v1/domains/{domain}",
		pathParams: map[string]string{"domain": domainID},
	})
	if err != nil {
		return nil, err
	}

	var result Domain
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
