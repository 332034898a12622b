package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/service/wizard"
)

// AdGeneratorHandler exposes the ad generator wizard steps.
type AdGeneratorHandler struct{}

// NewAdGeneratorHandler constructs an AdGeneratorHandler.
func NewAdGeneratorHandler() *AdGeneratorHandler {
	return &AdGeneratorHandler{}
}

// Steps handles GET /ad-generator/steps.
func (h *AdGeneratorHandler) Steps(c echo.Context) error {
	var w wizard.Wizard
	return Success(c, http.StatusOK, "wizard steps", map[string]any{
		"steps":   wizard.Steps(),
		"initial": w.State(),
	})
}

// Transition handles POST /ad-generator/transition.
func (h *AdGeneratorHandler) Transition(c echo.Context) error {
	var req dto.WizardTransitionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	state, err := wizard.Advance(req.Step, req.Action)
	if err != nil {
		if errors.Is(err, wizard.ErrUnknownAction) {
			return Error(c, http.StatusBadRequest, "action must be next or back")
		}
		return Error(c, http.StatusInternalServerError, "unable to advance wizard")
	}
	return Success(c, http.StatusOK, "wizard advanced", state)
}
