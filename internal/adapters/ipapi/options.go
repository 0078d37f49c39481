package ipapi

import "net/http"

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithURLTemplate: el template lleva un único %s donde va la IP.
func WithURLTemplate(tpl string) Option {
	return func(c *Client) { c.urlTemplate = tpl }
}
