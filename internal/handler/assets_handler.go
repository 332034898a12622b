package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/freepik"
)

// AssetProvider searches and downloads stock assets.
type AssetProvider interface {
	SearchAssets(ctx context.Context, params freepik.SearchParams) (entity.SearchPage[entity.MediaAsset], error)
	DownloadAsset(ctx context.Context, assetID string) (entity.DownloadLink, error)
}

// AssetsHandler exposes stock asset search for the ad generator.
type AssetsHandler struct {
	assets AssetProvider
}

// NewAssetsHandler constructs an AssetsHandler.
func NewAssetsHandler(assets AssetProvider) *AssetsHandler {
	return &AssetsHandler{assets: assets}
}

// Search handles GET /assets/search.
func (h *AssetsHandler) Search(c echo.Context) error {
	var query dto.AssetSearchQuery
	if err := c.Bind(&query); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}

	params := freepik.SearchParams{
		Query:       strings.TrimSpace(query.Query),
		Type:        entity.MediaKind(strings.ToLower(strings.TrimSpace(query.Type))),
		Page:        query.Page,
		Limit:       query.Limit,
		Orientation: strings.TrimSpace(query.Orientation),
		Category:    strings.TrimSpace(query.Category),
		Color:       strings.TrimSpace(query.Color),
		People:      strings.TrimSpace(query.People),
	}
	if params.Query == "" {
		return Error(c, http.StatusBadRequest, "q is required")
	}
	if params.Type != "" && !params.Type.Valid() {
		return Error(c, http.StatusBadRequest, "type must be photo, vector or psd")
	}
	if params.Page < 0 || params.Limit < 0 {
		return Error(c, http.StatusBadRequest, "page and limit must not be negative")
	}

	page, err := h.assets.SearchAssets(c.Request().Context(), params)
	if err != nil {
		return assetError(c, err)
	}
	return Success(c, http.StatusOK, "assets retrieved", page)
}

// Download handles GET /assets/:id/download.
func (h *AssetsHandler) Download(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return Error(c, http.StatusBadRequest, "asset id is required")
	}

	link, err := h.assets.DownloadAsset(c.Request().Context(), id)
	if err != nil {
		return assetError(c, err)
	}
	return Success(c, http.StatusOK, "download link resolved", link)
}

func assetError(c echo.Context, err error) error {
	var apiErr *freepik.APIError
	switch {
	case errors.Is(err, freepik.ErrMissingAPIKey):
		return Error(c, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &apiErr):
		return Error(c, http.StatusBadGateway, apiErr.Message)
	case errors.Is(err, freepik.ErrMissingDownloadURL):
		return Error(c, http.StatusBadGateway, err.Error())
	default:
		return Error(c, http.StatusBadGateway, "asset provider request failed")
	}
}
