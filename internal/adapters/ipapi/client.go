package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jose-valero/warabi-bot/internal/domain"
)

const DefaultURLTemplate = "http://ip-api.com/json/%s"

type Client struct {
	http        *http.Client
	urlTemplate string
}

func New(opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: 10 * time.Second},
		urlTemplate: DefaultURLTemplate,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type lookupDTO struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Query   string `json:"query"`
	Country string `json:"country"`
	City    string `json:"city"`
	ISP     string `json:"isp"`
}

// Lookup consulta la IP como segmento de path. Sin reintentos.
func (c *Client) Lookup(ctx context.Context, ip string) (domain.IPInfo, error) {
	u := fmt.Sprintf(c.urlTemplate, url.PathEscape(strings.TrimSpace(ip)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.IPInfo{}, fmt.Errorf("ip api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return domain.IPInfo{}, fmt.Errorf("ip api http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return domain.IPInfo{}, &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var dto lookupDTO
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return domain.IPInfo{}, fmt.Errorf("ip api decode: %w", err)
	}
	if dto.Status == "fail" {
		return domain.IPInfo{}, &LookupError{Query: dto.Query, Message: dto.Message}
	}
	return domain.IPInfo{Query: dto.Query, Country: dto.Country, City: dto.City, ISP: dto.ISP}, nil
}
