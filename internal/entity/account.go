package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus tracks the lifecycle of an account plan.
type AccountStatus string

const (
	AccountStatusDraft     AccountStatus = "draft"
	AccountStatusActive    AccountStatus = "active"
	AccountStatusCompleted AccountStatus = "completed"
)

// Valid reports whether s is a known status.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountStatusDraft, AccountStatusActive, AccountStatusCompleted:
		return true
	default:
		return false
	}
}

// Influence describes a stakeholder's weight in the buying decision.
type Influence string

const (
	InfluenceDecisionMaker Influence = "decision_maker"
	InfluenceInfluencer    Influence = "influencer"
	InfluenceChampion      Influence = "champion"
	InfluenceUser          Influence = "user"
)

// Valid reports whether i is a known influence level.
func (i Influence) Valid() bool {
	switch i {
	case InfluenceDecisionMaker, InfluenceInfluencer, InfluenceChampion, InfluenceUser:
		return true
	default:
		return false
	}
}

// AccountPlan is an account-based marketing plan for one named organization.
type AccountPlan struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Domain       *string       `json:"domain,omitempty"`
	Status       AccountStatus `json:"status"`
	RevenueGoal  int64         `json:"revenue_goal"`
	Timeline     string        `json:"timeline"`
	Milestones   []string      `json:"milestones"`
	Channels     []string      `json:"channels"`
	CurrentStage string        `json:"current_stage"`
	NextActions  []string      `json:"next_actions"`
	Stakeholders []Stakeholder `json:"stakeholders,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Stakeholder is a person involved in an account's buying decision.
type Stakeholder struct {
	ID          uuid.UUID  `json:"id"`
	AccountID   uuid.UUID  `json:"account_id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Influence   Influence  `json:"influence"`
	Engagement  int        `json:"engagement"`
	LastContact *time.Time `json:"last_contact,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}
