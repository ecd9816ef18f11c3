package client

import (
	"context"
	"net/http"
)

// SendEmail sends an email. From, To and Subject are required; a missing
// field is reported as a [KindValidation] error before any request is made.
func (c *Client) SendEmail(ctx context.Context, email *EmailOptions) (*Email, error) {
	if email == nil || email.From == "" {
		return nil, missingField("from")
	}
	if len(email.To) == 0 {
		return nil, missingField("to")
	}
	if email.Subject == "" {
		return nil, missingField("subject")
	}

	raw, err := c.do(ctx, apiRequest{
		method: http.MethodPost,
		path:   "/v1/emails",
		body:   email,
	})
	if err != nil {
		return nil, err
	}

	var result Email
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListEmails lists sent emails. opts may be nil.
func (c *Client) ListEmails(ctx context.Context, opts *ListEmailsOptions) ([]Email, error) {
	raw, err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/emails",
		query:  opts.queryParams(),
	})
	if err != nil {
		return nil, err
	}

	var result []Email
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) GetEmail(ctx context.Context, emailID string) (*Email, error) {
	if emailID == "" {
		return nil, validationError("id", "Email ID is required")
	}

	raw, err := c.do(ctx, apiRequest{
		method:     http.MethodGet,
		path:       "/v1/emails/{id}",
		pathParams: map[string]string{"id": emailID},
	})
	if err != nil {
		return nil, err
	}

	var result Email
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteEmail(ctx context.Context, emailID string) (*DeleteResult, error) {
	if emailID == "" {
		return nil, validationError("id", "Email ID is required")
	}

	raw, err := c.do(ctx, apiRequest{
		method:     http.MethodDelete,
		path:       "/v1/emails/{id}",
		pathParams: map[string]string{"id": emailID},
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

// GetEmailLimit returns the current outbound sending usage and limit.
func (c *Client) GetEmailLimit(ctx context.Context) (*EmailLimit, error) {
	raw, err := c.do(ctx, apiRequest{
		method: http.MethodGet,
		path:   "/v1/emails/limit",
	})
	if err != nil {
		return nil, err
	}

	var result EmailLimit
	if err := decode(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
