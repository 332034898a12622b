package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/service"
)

// AccountsHandler exposes account plan endpoints.
type AccountsHandler struct {
	accounts *service.AccountsService
}

// NewAccountsHandler constructs an AccountsHandler.
func NewAccountsHandler(accounts *service.AccountsService) *AccountsHandler {
	return &AccountsHandler{accounts: accounts}
}

// List handles GET /accounts.
func (h *AccountsHandler) List(c echo.Context) error {
	filter := dto.AccountFilter{Status: c.QueryParam("status")}

	var err error
	if filter.Page, err = queryInt(c, "page"); err != nil {
		return Error(c, http.StatusBadRequest, "page must be a number")
	}
	if filter.PerPage, err = queryInt(c, "per_page"); err != nil {
		return Error(c, http.StatusBadRequest, "per_page must be a number")
	}

	page, err := h.accounts.List(c.Request().Context(), filter)
	if err != nil {
		return accountError(c, err, "failed to list account plans")
	}
	return Success(c, http.StatusOK, "account plans retrieved", page)
}

// Create handles POST /accounts.
func (h *AccountsHandler) Create(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	plan, err := h.accounts.Create(c.Request().Context(), req)
	if err != nil {
		return accountError(c, err, "failed to create account plan")
	}
	return Success(c, http.StatusCreated, "account plan created", plan)
}

// Get handles GET /accounts/:id.
func (h *AccountsHandler) Get(c echo.Context) error {
	plan, err := h.accounts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return accountError(c, err, "failed to load account plan")
	}
	return Success(c, http.StatusOK, "account plan retrieved", plan)
}

// Enrichment handles GET /accounts/:id/enrichment.
func (h *AccountsHandler) Enrichment(c echo.Context) error {
	profile, err := h.accounts.EnrichAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return accountError(c, err, "failed to enrich account")
	}
	if profile == nil {
		return SuccessOptional(c, "enrichment unavailable", nil)
	}
	return SuccessOptional(c, "account enriched", profile)
}

// Prospects handles POST /accounts/:id/prospects.
func (h *AccountsHandler) Prospects(c echo.Context) error {
	var req dto.AccountProspectsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	prospects, err := h.accounts.AccountProspects(c.Request().Context(), c.Param("id"), entity.ProspectCriteria{
		Titles:      req.Titles,
		Seniorities: req.Seniorities,
	})
	if err != nil {
		return accountError(c, err, "failed to find account prospects")
	}
	return Success(c, http.StatusOK, "prospects retrieved", map[string]any{"prospects": prospects})
}

// Journey handles GET /accounts/:id/journey.
func (h *AccountsHandler) Journey(c echo.Context) error {
	journeys, err := h.accounts.StakeholderJourneys(c.Request().Context(), c.Param("id"))
	if err != nil {
		return accountError(c, err, "failed to build stakeholder journeys")
	}
	return Success(c, http.StatusOK, "stakeholder journeys retrieved", map[string]any{"stakeholders": journeys})
}

func accountError(c echo.Context, err error, fallback string) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return Error(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, service.ErrInvalidAccountID):
		return Error(c, http.StatusBadRequest, "invalid account id")
	case errors.Is(err, service.ErrAccountNotFound):
		return Error(c, http.StatusNotFound, "account plan not found")
	case errors.Is(err, service.ErrAccountDomainUnknown):
		return Error(c, http.StatusUnprocessableEntity, "account has no domain to enrich")
	default:
		return Error(c, http.StatusInternalServerError, fallback)
	}
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
