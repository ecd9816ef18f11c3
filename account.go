package client

import (
	"context"
	"net/http"
)

func (c *Client) GetAccount(ctx context.Context) (*Account, error) {
	raw, err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/account",
	})
	if err != nil {
		return nil, err
	}

	var result Account
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateAccount changes the display name and/or locale. update may be nil,
// in which case no body is sent.
func (c *Client) UpdateAccount(ctx context.Context, update *AccountUpdate) (*Account, error) {
	req := apiRequest{
		method: http.MethodPut,
		path:   "/v1/account",
	}
	if update != nil {
		req.body = update
	}

	raw, err := c.do(ctx, req)
	if err != nil {
		return nil, err
	}

	var result Account
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
