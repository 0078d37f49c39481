package gemimi

import "net/http"

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithEndpoint(u string) Option {
	return func(c *Client) { c.endpoint = u }
}
