// Package freepik searches and downloads licensed stock assets.
//
// Unlike the enrichment client, every failure here is returned to the caller.
package freepik

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/octobees/marketing-ops/api/internal/config"
	"github.com/octobees/marketing-ops/api/internal/contracts"
	"github.com/octobees/marketing-ops/api/internal/entity"
)

// Locale is sent with every search.
const Locale = "en-US"

var (
	// ErrMissingAPIKey is returned before any request when no API key is configured.
	ErrMissingAPIKey = errors.New("freepik API key is not configured")
	// ErrMissingDownloadURL is returned when a download response carries no URL.
	ErrMissingDownloadURL = errors.New("no download URL provided")
)

// APIError is a non-2xx vendor response. Message is the vendor's message when
// the body carried one, otherwise "API Error: <status>".
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// SearchParams are the search inputs. Zero-valued options are not sent.
type SearchParams struct {
	Query       string
	Type        entity.MediaKind
	Page        int
	Limit       int
	Orientation string
	Category    string
	Color       string
	People      string
}

// Values encodes the params as a query string.
func (p SearchParams) Values() url.Values {
	q := url.Values{}
	q.Set("q", p.Query)
	if p.Type != "" {
		q.Set("type", string(p.Type))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Orientation != "" {
		q.Set("orientation", p.Orientation)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Color != "" {
		q.Set("color", p.Color)
	}
	if p.People != "" {
		q.Set("people", p.People)
	}
	q.Set("locale", Locale)
	return q
}

// Client calls the stock-asset vendor.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	log     *zap.Logger
}

// NewClient builds a client from cfg.
func NewClient(cfg config.FreepikConfig, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		log:     log.Named("freepik"),
	}
}

type searchPayload struct {
	Data []struct {
		ID      assetID `json:"id"`
		Type    string  `json:"type"`
		URL     string  `json:"url"`
		Preview struct {
			URL string `json:"url"`
		} `json:"preview"`
		Width   int `json:"width"`
		Height  int `json:"height"`
		License struct {
			Type string `json:"type"`
		} `json:"license"`
		Tags []string `json:"tags"`
	} `json:"data"`
	Meta struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	} `json:"meta"`
}

// SearchAssets returns one page of assets matching params.
func (c *Client) SearchAssets(ctx context.Context, params SearchParams) (entity.SearchPage[entity.MediaAsset], error) {
	var page entity.SearchPage[entity.MediaAsset]

	body, err := c.get(ctx, "/resources/search?"+params.Values().Encode())
	if err != nil {
		return page, err
	}

	var payload searchPayload
	if err := contracts.Decode(contracts.FreepikSearch, body, &payload); err != nil {
		c.log.Error("freepik search response rejected", zap.Error(err))
		return page, err
	}

	items := payload.Data
	if params.Limit > 0 && len(items) > params.Limit {
		items = items[:params.Limit]
	}

	page.Items = make([]entity.MediaAsset, 0, len(items))
	for _, asset := range items {
		tags := asset.Tags
		if tags == nil {
			tags = []string{}
		}
		page.Items = append(page.Items, entity.MediaAsset{
			ID:   string(asset.ID),
			Kind: entity.MediaKind(asset.Type),
			URL:  asset.URL,
			// the vendor's preview object collapses to its URL
			Preview: asset.Preview.URL,
			Dimensions: entity.Dimensions{
				Width:  asset.Width,
				Height: asset.Height,
			},
			License: asset.License.Type,
			Tags:    tags,
		})
	}
	page.Total = payload.Meta.Pagination.Total
	return page, nil
}

// DownloadAsset resolves a short-lived download URL for the asset.
func (c *Client) DownloadAsset(ctx context.Context, assetID string) (entity.DownloadLink, error) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return entity.DownloadLink{}, errors.New("asset id is required")
	}

	body, err := c.get(ctx, "/resources/"+url.PathEscape(assetID)+"/download")
	if err != nil {
		return entity.DownloadLink{}, err
	}

	var payload struct {
		URL *string `json:"url"`
	}
	if err := contracts.Decode(contracts.FreepikDownload, body, &payload); err != nil {
		c.log.Error("freepik download response rejected", zap.String("asset_id", assetID), zap.Error(err))
		return entity.DownloadLink{}, err
	}
	if payload.URL == nil || strings.TrimSpace(*payload.URL) == "" {
		c.log.Error("freepik download response without url", zap.String("asset_id", assetID))
		return entity.DownloadLink{}, ErrMissingDownloadURL
	}
	return entity.DownloadLink{URL: *payload.URL}, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create freepik request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("freepik API error", zap.Error(err))
		return nil, fmt.Errorf("freepik request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("freepik API error", zap.Error(err))
		return nil, fmt.Errorf("read freepik response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: extractVendorMessage(body, resp.StatusCode)}
		c.log.Error("freepik API error", zap.Int("status", resp.StatusCode), zap.String("message", apiErr.Message))
		return nil, apiErr
	}
	return body, nil
}

func extractVendorMessage(body []byte, status int) string {
	fallback := fmt.Sprintf("API Error: %d", status)
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), &payload); err != nil || payload.Message == "" {
		return fallback
	}
	return payload.Message
}

// assetID accepts both string and numeric identifiers.
type assetID string

func (id *assetID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = assetID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = assetID(n.String())
	return nil
}
