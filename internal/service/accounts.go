package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/octobees/marketing-ops/api/internal/contact"
	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/repository"
	"github.com/octobees/marketing-ops/api/internal/service/journey"
)

const (
	defaultPage    = 1
	defaultPerPage = 20
	maxPerPage     = 100
)

var (
	ErrInvalidAccountID     = errors.New("invalid account id")
	ErrAccountNotFound      = repository.ErrAccountNotFound
	ErrAccountDomainUnknown = errors.New("account has no domain")
)

// ValidationError reports a rejected account field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompanyEnricher resolves a domain to a firmographic profile, or nil.
type CompanyEnricher interface {
	EnrichCompany(ctx context.Context, domain string) *entity.CompanyProfile
}

// ProspectSearcher lists contacts at an enriched organization.
type ProspectSearcher interface {
	FindProspects(ctx context.Context, organizationID string, criteria entity.ProspectCriteria) []entity.ProspectCandidate
}

// StakeholderJourney pairs a stakeholder with their journey position.
type StakeholderJourney struct {
	Stakeholder entity.Stakeholder `json:"stakeholder"`
	Journey     journey.Progress   `json:"journey"`
}

// AccountsService manages account plans and their vendor lookups.
type AccountsService struct {
	repo      repository.AccountsRepository
	enricher  CompanyEnricher
	prospects ProspectSearcher
	log       *zap.Logger
}

// NewAccountsService wires the service dependencies.
func NewAccountsService(repo repository.AccountsRepository, enricher CompanyEnricher, prospects ProspectSearcher, log *zap.Logger) *AccountsService {
	if log == nil {
		log = zap.NewNop()
	}
	return &AccountsService{repo: repo, enricher: enricher, prospects: prospects, log: log.Named("accounts")}
}

// List returns a page of plans. Page and per-page fall back to 1 and 20; per-page is capped at 100.
func (s *AccountsService) List(ctx context.Context, filter dto.AccountFilter) (dto.AccountListResponse, error) {
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))
	if filter.Status != "" && !entity.AccountStatus(filter.Status).Valid() {
		return dto.AccountListResponse{}, &ValidationError{Field: "status", Message: "must be draft, active or completed"}
	}
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PerPage <= 0 {
		filter.PerPage = defaultPerPage
	}
	if filter.PerPage > maxPerPage {
		filter.PerPage = maxPerPage
	}

	plans, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.AccountListResponse{}, err
	}
	return dto.AccountListResponse{Items: plans, Total: total, Page: filter.Page, PerPage: filter.PerPage}, nil
}

// Get loads a plan with its stakeholders.
func (s *AccountsService) Get(ctx context.Context, id string) (*entity.AccountPlan, error) {
	accountID, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return nil, ErrInvalidAccountID
	}
	return s.repo.FindByID(ctx, accountID)
}

// Create validates and stores a new plan.
func (s *AccountsService) Create(ctx context.Context, req dto.CreateAccountRequest) (*entity.AccountPlan, error) {
	plan := &entity.AccountPlan{
		Name:         strings.TrimSpace(req.Name),
		Status:       entity.AccountStatus(strings.ToLower(strings.TrimSpace(req.Status))),
		RevenueGoal:  req.RevenueGoal,
		Timeline:     strings.TrimSpace(req.Timeline),
		Milestones:   req.Milestones,
		Channels:     req.Channels,
		CurrentStage: strings.TrimSpace(req.CurrentStage),
		NextActions:  req.NextActions,
	}
	if plan.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "is required"}
	}
	if plan.Status == "" {
		plan.Status = entity.AccountStatusDraft
	}
	if !plan.Status.Valid() {
		return nil, &ValidationError{Field: "status", Message: "must be draft, active or completed"}
	}
	if plan.RevenueGoal < 0 {
		return nil, &ValidationError{Field: "revenue_goal", Message: "must not be negative"}
	}
	if raw := strings.TrimSpace(req.Domain); raw != "" {
		domain, err := contact.NormalizeDomain(raw)
		if err != nil {
			return nil, &ValidationError{Field: "domain", Message: "is not a valid domain"}
		}
		plan.Domain = &domain
	}

	plan.Stakeholders = make([]entity.Stakeholder, 0, len(req.Stakeholders))
	for i, in := range req.Stakeholders {
		field := fmt.Sprintf("stakeholders[%d]", i)
		stakeholder := entity.Stakeholder{
			Name:        strings.TrimSpace(in.Name),
			Role:        strings.TrimSpace(in.Role),
			Influence:   entity.Influence(strings.ToLower(strings.TrimSpace(in.Influence))),
			Engagement:  in.Engagement,
			LastContact: in.LastContact,
			Notes:       strings.TrimSpace(in.Notes),
		}
		if stakeholder.Name == "" {
			return nil, &ValidationError{Field: field + ".name", Message: "is required"}
		}
		if !stakeholder.Influence.Valid() {
			return nil, &ValidationError{Field: field + ".influence", Message: "must be decision_maker, influencer, champion or user"}
		}
		if stakeholder.Engagement < 0 || stakeholder.Engagement > 100 {
			return nil, &ValidationError{Field: field + ".engagement", Message: "must be between 0 and 100"}
		}
		plan.Stakeholders = append(plan.Stakeholders, stakeholder)
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	s.log.Info("account plan created", zap.String("account_id", plan.ID.String()), zap.Int("stakeholders", len(plan.Stakeholders)))
	return plan, nil
}

// EnrichAccount returns the firmographic profile of the account's domain. A nil
// profile with a nil error means the vendor had no data.
func (s *AccountsService) EnrichAccount(ctx context.Context, id string) (*entity.CompanyProfile, error) {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.Domain == nil || *plan.Domain == "" {
		return nil, ErrAccountDomainUnknown
	}
	return s.enricher.EnrichCompany(ctx, *plan.Domain), nil
}

// AccountProspects enriches the account and searches people at the resulting
// organization. The list is empty when enrichment yields nothing.
func (s *AccountsService) AccountProspects(ctx context.Context, id string, criteria entity.ProspectCriteria) ([]entity.ProspectCandidate, error) {
	profile, err := s.EnrichAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID == "" {
		s.log.Info("no organization for account prospects", zap.String("account_id", id))
		return []entity.ProspectCandidate{}, nil
	}
	return s.prospects.FindProspects(ctx, profile.ID, criteria), nil
}

// StakeholderJourneys places every stakeholder of the account on the journey.
func (s *AccountsService) StakeholderJourneys(ctx context.Context, id string) ([]StakeholderJourney, error) {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	journeys := make([]StakeholderJourney, 0, len(plan.Stakeholders))
	for _, stakeholder := range plan.Stakeholders {
		journeys = append(journeys, StakeholderJourney{
			Stakeholder: stakeholder,
			Journey:     journey.ComputeProgress(stakeholder.Engagement),
		})
	}
	return journeys, nil
}
