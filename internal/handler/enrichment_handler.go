package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/service"
)

// EnrichmentHandler exposes company enrichment and prospect search.
type EnrichmentHandler struct {
	enricher  service.CompanyEnricher
	prospects service.ProspectSearcher
}

// NewEnrichmentHandler constructs an EnrichmentHandler.
func NewEnrichmentHandler(enricher service.CompanyEnricher, prospects service.ProspectSearcher) *EnrichmentHandler {
	return &EnrichmentHandler{enricher: enricher, prospects: prospects}
}

// EnrichCompany handles POST /enrichment/company. An unavailable profile is a
// successful response with null data.
func (h *EnrichmentHandler) EnrichCompany(c echo.Context) error {
	var req dto.EnrichCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	profile := h.enricher.EnrichCompany(c.Request().Context(), strings.TrimSpace(req.Domain))
	if profile == nil {
		return SuccessOptional(c, "enrichment unavailable", nil)
	}
	return SuccessOptional(c, "company enriched", profile)
}

// FindProspects handles POST /enrichment/prospects.
func (h *EnrichmentHandler) FindProspects(c echo.Context) error {
	var req dto.FindProspectsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.OrganizationID = strings.TrimSpace(req.OrganizationID)
	if req.OrganizationID == "" {
		return Error(c, http.StatusBadRequest, "organization_id is required")
	}

	prospects := h.prospects.FindProspects(c.Request().Context(), req.OrganizationID, entity.ProspectCriteria{
		Titles:      req.Titles,
		Seniorities: req.Seniorities,
	})
	return Success(c, http.StatusOK, "prospects retrieved", map[string]any{"prospects": prospects})
}
