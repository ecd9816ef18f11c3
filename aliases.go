package client

import (
	"context"
	"net/http"
)

const (
	aliasesPath = "/v1/domains/{domain}/aliases"
	aliasPath   = "/v1/domains/{domain}/aliases/{alias}"
)

// validateAliasIDs checks the identifiers needed to address a single alias.
func validateAliasIDs(domainID, aliasID string) error {
	if domainID == "" || aliasID == "" {
		field := "domain"
		if domainID != "" {
			field = "alias"
		}
		return validationError(field, "Domain ID and Alias ID are required")
	}
	return nil
}

// ListAliases lists the aliases of a domain, given by ID or name.
func (c *Client) ListAliases(ctx context.Context, domainID string) ([]Alias, error) {
	if domainID == "" {
		return nil, validationError("domain", "Domain ID is required")
	}

	raw, err := c.do(ctx, apiRequest{
		method:     http.MethodGet,
		path:       aliasesPath,
		pathParams: map[string]string{"domain": domainID},
	})
	if err != nil {
		return nil, err
	}

	var result []Alias
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetAlias(ctx context.Context, domainID, aliasID string) (*Alias, error) {
	if err := validateAliasIDs(domainID, aliasID); err != nil {
		return nil, err
	}

	return c.aliasRequest(ctx, apiRequest{
		method:     http.MethodGet,
		path:       aliasPath,
		pathParams: map[string]string{"domain": domainID, "alias": aliasID},
	})
}

// CreateAlias creates an alias on a domain. params may be nil, in which case
// the server picks defaults.
func (c *Client) CreateAlias(ctx context.Context, domainID string, params *AliasParams) (*Alias, error) {
	if domainID == "" {
		return nil, validationError("domain", "Domain ID is required")
	}

	req := apiRequest{
		method:     http.MethodPost,
		path:       aliasesPath,
		pathParams: map[string]string{"domain": domainID},
	}
	if params != nil {
		req.body = params
	}
	return c.aliasRequest(ctx, req)
}

func (c *Client) UpdateAlias(ctx context.Context, domainID, aliasID string, params *AliasParams) (*Alias, error) {
	if err := validateAliasIDs(domainID, aliasID); err != nil {
		return nil, err
	}

	req := apiRequest{
		method:     http.MethodPut,
		path:       aliasPath,
		pathParams: map[string]string{"domain": domainID, "alias": aliasID},
	}
	if params != nil {
		req.body = params
	}
	return c.aliasRequest(ctx, req)
}

func (c *Client) DeleteAlias(ctx context.Context, domainID, aliasID string) (*DeleteResult, error) {
	if err := validateAliasIDs(domainID, aliasID); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, apiRequest{
		method:     http.MethodDelete,
		path:       aliasPath,
		pathParams: map[string]string{"domain": domainID, "alias": aliasID},
	})
	if err != nil {
		return nil, err
	}

	var result DeleteResult
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) aliasRequest(ctx context.Context, req apiRequest) (*Alias, error) {
	raw, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	var result Alias
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
