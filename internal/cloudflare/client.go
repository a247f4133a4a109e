package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Client talks to the Cloudflare API v4. It authenticates with a scoped
// API token (Zone:Read, DNS:Edit, and Cloudflare Tunnel:Read for the
// account). It uses a direct HTTP client rather than the official SDK to
// keep the dependency tree light.
type Client struct {
	accountID string
	token     string
	baseURL   string
	http      *http.Client
	logger    zerolog.Logger
}

// New creates a Client for the given account using the given API token.
func New(accountID, token, baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		accountID: accountID,
		token:     token,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

// apiErrorString joins multiple Cloudflare errors into a single string.
func apiErrorString(errors []apiError) string {
	if len(errors) == 0 {
		return "unknown error"
	}
	msgs := make([]string, 0, len(errors))
	for _, e := range errors {
		msgs = append(msgs, fmt.Sprintf("[%d] %s", e.Code, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// doJSON issues one request and decodes the response body into out.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cloudflare: encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("cloudflare: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("Cloudflare API call")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cloudflare: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cloudflare: decode response (status %d): %w", resp.StatusCode, err)
	}
	return nil
}

// listPaged fetches every page of a list endpoint. pathFor receives the
// 1-based page number and must include any other query parameters.
func listPaged[T any](ctx context.Context, c *Client, op string, pathFor func(page int) string) ([]T, error) {
	var all []T
	page := 1
	for {
		var out listEnvelope[T]
		if err := c.doJSON(ctx, http.MethodGet, pathFor(page), nil, &out); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !out.Success {
			return nil, fmt.Errorf("%s: %s", op, apiErrorString(out.Errors))
		}
		all = append(all, out.Result...)
		if page >= out.ResultInfo.TotalPages {
			break
		}
		page++
	}
	return all, nil
}

// ListZones returns all zones visible to the token.
func (c *Client) ListZones(ctx context.Context) ([]Zone, error) {
	return listPaged[Zone](ctx, c, "list zones", func(page int) string {
		return fmt.Sprintf("/zones?page=%d&per_page=50", page)
	})
}

// ListRecords returns all DNS records of a zone.
func (c *Client) ListRecords(ctx context.Context, zoneID string) ([]DNSRecord, error) {
	return listPaged[DNSRecord](ctx, c, "list dns records", func(page int) string {
		return fmt.Sprintf("/zones/%s/dns_records?page=%d&per_page=100", zoneID, page)
	})
}

// ListActiveTunnels returns the account's tunnels that have not been
// deleted. The filter is applied server-side.
func (c *Client) ListActiveTunnels(ctx context.Context) ([]Tunnel, error) {
	return listPaged[Tunnel](ctx, c, "list tunnels", func(page int) string {
		return fmt.Sprintf("/accounts/%s/cfd_tunnel?is_deleted=false&page=%d&per_page=100", c.accountID, page)
	})
}

// GetTunnelConfiguration returns a tunnel's current configuration,
// including its ingress rules.
func (c *Client) GetTunnelConfiguration(ctx context.Context, tunnelID string) (TunnelConfiguration, error) {
	var out envelope[tunnelConfigResult]
	path := fmt.Sprintf("/accounts/%s/cfd_tunnel/%s/configurations", c.accountID, tunnelID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return TunnelConfiguration{}, fmt.Errorf("get tunnel configuration: %w", err)
	}
	if !out.Success {
		return TunnelConfiguration{}, fmt.Errorf("get tunnel configuration: %s", apiErrorString(out.Errors))
	}
	return out.Result.Config, nil
}

// CreateRecord creates a DNS record in the zone.
func (c *Client) CreateRecord(ctx context.Context, zoneID string, params RecordParams) error {
	var out envelope[DNSRecord]
	path := fmt.Sprintf("/zones/%s/dns_records", zoneID)
	if err := c.doJSON(ctx, http.MethodPost, path, params, &out); err != nil {
		return fmt.Errorf("create dns record: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("create dns record: %s", apiErrorString(out.Errors))
	}
	return nil
}

// PatchRecord updates an existing DNS record in place.
func (c *Client) PatchRecord(ctx context.Context, zoneID, recordID string, params RecordParams) error {
	var out envelope[DNSRecord]
	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID)
	if err := c.doJSON(ctx, http.MethodPatch, path, params, &out); err != nil {
		return fmt.Errorf("patch dns record: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("patch dns record: %s", apiErrorString(out.Errors))
	}
	return nil
}

// DeleteRecord deletes a DNS record by id.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	var out envelope[struct {
		ID string `json:"id"`
	}]
	path := fmt.Sprintf("/zones/%s/dns_records/%s", zoneID, recordID)
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return fmt.Errorf("delete dns record: %w", err)
	}
	if !out.Success {
		return fmt.Errorf("delete dns record: %s", apiErrorString(out.Errors))
	}
	return nil
}
