// Package apollo resolves company domains to firmographic profiles and finds
// prospects at those companies.
//
// Both operations swallow failures: they log a diagnostic and return an empty
// result, so callers treat "no data" as unavailable rather than as an error.
package apollo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/octobees/marketing-ops/api/internal/config"
	"github.com/octobees/marketing-ops/api/internal/contact"
	"github.com/octobees/marketing-ops/api/internal/contracts"
	"github.com/octobees/marketing-ops/api/internal/entity"
)

const defaultMockDelay = time.Second

// APIError reports a non-2xx response from the vendor.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apollo API error: %s", e.Status)
}

// Client talks to the enrichment vendor, or serves fixtures in mock mode.
type Client struct {
	http       *http.Client
	baseURL    string
	apiKey     string
	useMock    bool
	mockDelay  time.Duration
	normalizer *contact.Normalizer
	log        *zap.Logger
}

// NewClient builds a client from cfg. The mock flag is fixed for the client's lifetime.
func NewClient(cfg config.ApolloConfig, httpClient *http.Client, normalizer *contact.Normalizer, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if normalizer == nil {
		normalizer = contact.NewNormalizer("")
	}
	if log == nil {
		log = zap.NewNop()
	}
	delay := cfg.MockDelay
	if delay <= 0 {
		delay = defaultMockDelay
	}
	return &Client{
		http:       httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		useMock:    cfg.UseMock,
		mockDelay:  delay,
		normalizer: normalizer,
		log:        log.Named("apollo"),
	}
}

// MockMode reports whether the client serves fixtures.
func (c *Client) MockMode() bool {
	return c.useMock
}

// EnrichCompany returns the firmographic profile for domain, or nil when no data
// is available.
func (c *Client) EnrichCompany(ctx context.Context, domain string) *entity.CompanyProfile {
	if c.useMock {
		if !c.simulateLatency(ctx) {
			return nil
		}
		return MockCompanyProfile()
	}

	profile, err := c.enrich(ctx, domain)
	if err != nil {
		c.log.Warn("apollo enrichment error", zap.String("domain", domain), zap.Error(err))
		return nil
	}
	return profile
}

// FindProspects returns contacts at the organization matching criteria. The
// result is never nil.
func (c *Client) FindProspects(ctx context.Context, organizationID string, criteria entity.ProspectCriteria) []entity.ProspectCandidate {
	if c.useMock {
		if !c.simulateLatency(ctx) {
			return []entity.ProspectCandidate{}
		}
		return MockProspects()
	}

	prospects, err := c.searchPeople(ctx, organizationID, criteria)
	if err != nil {
		c.log.Warn("apollo prospect search error", zap.String("organization_id", organizationID), zap.Error(err))
		return []entity.ProspectCandidate{}
	}
	return prospects
}

func (c *Client) simulateLatency(ctx context.Context) bool {
	timer := time.NewTimer(c.mockDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		c.log.Warn("apollo mock request abandoned", zap.Error(ctx.Err()))
		return false
	}
}

type organizationPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Domain        *string  `json:"domain"`
	Industry      *string  `json:"industry"`
	EmployeeCount *int     `json:"employee_count"`
	Technologies  []string `json:"technologies"`
	LinkedInURL   *string  `json:"linkedin_url"`
	TwitterURL    *string  `json:"twitter_url"`
	FacebookURL   *string  `json:"facebook_url"`
}

func (c *Client) enrich(ctx context.Context, domain string) (*entity.CompanyProfile, error) {
	normalized, err := contact.NormalizeDomain(domain)
	if err != nil {
		return nil, fmt.Errorf("domain %q: %w", domain, err)
	}

	body, err := c.post(ctx, "/organizations/enrich", map[string]string{"domain": normalized})
	if err != nil {
		return nil, err
	}

	var payload organizationPayload
	if err := contracts.Decode(contracts.ApolloOrganization, body, &payload); err != nil {
		return nil, err
	}

	technologies := payload.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return &entity.CompanyProfile{
		ID:            payload.ID,
		Name:          payload.Name,
		Domain:        payload.Domain,
		Industry:      payload.Industry,
		EmployeeCount: payload.EmployeeCount,
		Technologies:  technologies,
		SocialLinks: entity.SocialLinks{
			LinkedIn: payload.LinkedInURL,
			Twitter:  payload.TwitterURL,
			Facebook: payload.FacebookURL,
		},
	}, nil
}

type peoplePayload struct {
	People []struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Title        *string `json:"title"`
		Email        *string `json:"email"`
		LinkedInURL  *string `json:"linkedin_url"`
		PhoneNumbers []struct {
			RawNumber       *string `json:"raw_number"`
			SanitizedNumber *string `json:"sanitized_number"`
		} `json:"phone_numbers"`
	} `json:"people"`
}

type peopleSearchRequest struct {
	OrganizationIDs []string `json:"organization_ids"`
	entity.ProspectCriteria
}

func (c *Client) searchPeople(ctx context.Context, organizationID string, criteria entity.ProspectCriteria) ([]entity.ProspectCandidate, error) {
	organizationID = strings.TrimSpace(organizationID)
	if organizationID == "" {
		return nil, fmt.Errorf("organization id is required")
	}

	body, err := c.post(ctx, "/mixed_people/search", peopleSearchRequest{
		OrganizationIDs:  []string{organizationID},
		ProspectCriteria: criteria,
	})
	if err != nil {
		return nil, err
	}

	var payload peoplePayload
	if err := contracts.Decode(contracts.ApolloPeople, body, &payload); err != nil {
		return nil, err
	}

	prospects := make([]entity.ProspectCandidate, 0, len(payload.People))
	for _, person := range payload.People {
		candidate := entity.ProspectCandidate{
			ID:   person.ID,
			Name: person.Name,
		}
		if person.Title != nil {
			candidate.Title = *person.Title
		}
		if person.Email != nil {
			candidate.Email = c.normalizer.Email(*person.Email)
		}
		if person.LinkedInURL != nil {
			candidate.LinkedInURL = c.normalizer.LinkedIn(*person.LinkedInURL)
		}
		for _, phone := range person.PhoneNumbers {
			raw := phone.SanitizedNumber
			if raw == nil || *raw == "" {
				raw = phone.RawNumber
			}
			if raw == nil {
				continue
			}
			if normalized := c.normalizer.Phone(*raw); normalized != nil {
				candidate.Phone = normalized
				break
			}
		}
		prospects = append(prospects, candidate)
	}
	return prospects, nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create apollo request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apollo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read apollo response: %w", err)
	}
	return body, nil
}
