package gemimi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultEndpoint = "https://gemimi-api.example.com/ask"

// Client habla con el servicio de preguntas/respuestas.
type Client struct {
	apiKey   string
	http     *http.Client
	endpoint string
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 60 * time.Second},
		endpoint: DefaultEndpoint,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer *string `json:"answer"`
}

// Ask: cualquier status fuera de 2xx o body sin "answer" es error.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	body, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("gemimi request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemimi http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return "", &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out askResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemimi decode: %w", err)
	}
	if out.Answer == nil || strings.TrimSpace(*out.Answer) == "" {
		return "", ErrEmptyAnswer
	}
	return *out.Answer, nil
}
