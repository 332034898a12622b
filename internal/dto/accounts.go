package dto

import (
	"time"

	"github.com/octobees/marketing-ops/api/internal/entity"
)

// AccountFilter contains query parameters for account plan listing.
type AccountFilter struct {
	Status  string
	Page    int
	PerPage int
}

// CreateStakeholderRequest describes one stakeholder of a new account plan.
type CreateStakeholderRequest struct {
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Influence   string     `json:"influence"`
	Engagement  int        `json:"engagement"`
	LastContact *time.Time `json:"last_contact,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// CreateAccountRequest captures a new account plan.
type CreateAccountRequest struct {
	Name         string                     `json:"name"`
	Domain       string                     `json:"domain,omitempty"`
	Status       string                     `json:"status,omitempty"`
	RevenueGoal  int64                      `json:"revenue_goal"`
	Timeline     string                     `json:"timeline"`
	Milestones   []string                   `json:"milestones"`
	Channels     []string                   `json:"channels"`
	CurrentStage string                     `json:"current_stage"`
	NextActions  []string                   `json:"next_actions"`
	Stakeholders []CreateStakeholderRequest `json:"stakeholders"`
}

// AccountListResponse is a page of account plans.
type AccountListResponse struct {
	Items   []entity.AccountPlan `json:"items"`
	Total   int                  `json:"total"`
	Page    int                  `json:"page"`
	PerPage int                  `json:"per_page"`
}
