package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/freepik"
)

type stubEnricher struct {
	profile  *entity.CompanyProfile
	domain   string
	orgID    string
	criteria entity.ProspectCriteria
}

func (s *stubEnricher) EnrichCompany(ctx context.Context, domain string) *entity.CompanyProfile {
	s.domain = domain
	return s.profile
}

func (s *stubEnricher) FindProspects(ctx context.Context, organizationID string, criteria entity.ProspectCriteria) []entity.ProspectCandidate {
	s.orgID = organizationID
	s.criteria = criteria
	return []entity.ProspectCandidate{{ID: "p1", Name: "Dana Li", Title: "CTO"}}
}

type stubAssets struct {
	params freepik.SearchParams
	err    error
}

func (s *stubAssets) SearchAssets(ctx context.Context, params freepik.SearchParams) (entity.SearchPage[entity.MediaAsset], error) {
	s.params = params
	if s.err != nil {
		return entity.SearchPage[entity.MediaAsset]{}, s.err
	}
	return entity.SearchPage[entity.MediaAsset]{Items: []entity.MediaAsset{{ID: "101", Kind: entity.MediaKindPhoto}}, Total: 40}, nil
}

func (s *stubAssets) DownloadAsset(ctx context.Context, assetID string) (entity.DownloadLink, error) {
	if s.err != nil {
		return entity.DownloadLink{}, s.err
	}
	return entity.DownloadLink{URL: "https://dl.example/" + assetID}, nil
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(func(string) (*App, error) { return app, nil })
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEnrichCommand(t *testing.T) {
	industry := "Technology"
	enricher := &stubEnricher{profile: &entity.CompanyProfile{ID: "org_1", Name: "TechCorp", Industry: &industry, Technologies: []string{}}}
	out, err := run(t, &App{Enricher: enricher, Log: zap.NewNop()}, "enrich", "techcorp.com")
	require.NoError(t, err)
	assert.Equal(t, "techcorp.com", enricher.domain)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "org_1", decoded["id"])
	assert.Equal(t, "Technology", decoded["industry"])
}

func TestEnrichCommand_NoData(t *testing.T) {
	_, err := run(t, &App{Enricher: &stubEnricher{}}, "enrich", "unknown.com")
	assert.ErrorIs(t, err, errNoProfile)
}

func TestEnrichCommand_RequiresDomain(t *testing.T) {
	_, err := run(t, &App{Enricher: &stubEnricher{}}, "enrich")
	assert.Error(t, err)
}

func TestProspectsCommand(t *testing.T) {
	enricher := &stubEnricher{}
	out, err := run(t, &App{Prospects: enricher}, "prospects", "org_9", "--title", "CTO", "--title", "VP Engineering", "--seniority", "c_suite")
	require.NoError(t, err)
	assert.Equal(t, "org_9", enricher.orgID)
	assert.Equal(t, []string{"CTO", "VP Engineering"}, enricher.criteria.Titles)
	assert.Equal(t, []string{"c_suite"}, enricher.criteria.Seniorities)
	assert.Contains(t, out, `"name": "Dana Li"`)
}

func TestAssetSearchCommand(t *testing.T) {
	assets := &stubAssets{}
	out, err := run(t, &App{Assets: assets}, "assets", "search", "office", "--type", "photo", "--page", "2", "--limit", "12", "--orientation", "horizontal")
	require.NoError(t, err)
	assert.Equal(t, freepik.SearchParams{Query: "office", Type: entity.MediaKindPhoto, Page: 2, Limit: 12, Orientation: "horizontal"}, assets.params)

	var decoded struct {
		Resources []entity.MediaAsset `json:"resources"`
		Total     int                 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 40, decoded.Total)
	require.Len(t, decoded.Resources, 1)
}

func TestAssetSearchCommand_RejectsUnknownType(t *testing.T) {
	assets := &stubAssets{}
	_, err := run(t, &App{Assets: assets}, "assets", "search", "office", "--type", "gif")
	assert.Error(t, err)
	assert.Empty(t, assets.params.Query)
}

func TestAssetCommands_SurfaceVendorErrors(t *testing.T) {
	app := &App{Assets: &stubAssets{err: freepik.ErrMissingAPIKey}}

	_, err := run(t, app, "assets", "search", "office")
	assert.ErrorIs(t, err, freepik.ErrMissingAPIKey)

	_, err = run(t, app, "assets", "download", "101")
	assert.ErrorIs(t, err, freepik.ErrMissingAPIKey)
}

func TestAssetDownloadCommand(t *testing.T) {
	out, err := run(t, &App{Assets: &stubAssets{}}, "assets", "download", "101")
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://dl.example/101"}`, out)
}

func TestBuilderErrorStopsCommand(t *testing.T) {
	root := NewRootCommand(func(string) (*App, error) { return nil, errors.New("bad config") })
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"enrich", "acme.com"})
	assert.EqualError(t, root.Execute(), "bad config")
}
