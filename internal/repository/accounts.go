package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
)

// ErrAccountNotFound is returned when no account plan matches the identifier.
var ErrAccountNotFound = errors.New("account plan not found")

// AccountsRepository describes persistence operations for account plans.
type AccountsRepository interface {
	List(ctx context.Context, filter dto.AccountFilter) ([]entity.AccountPlan, int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountPlan, error)
	Create(ctx context.Context, plan *entity.AccountPlan) error
	ListStakeholders(ctx context.Context, accountID uuid.UUID) ([]entity.Stakeholder, error)
}

// PGXAccountsRepository implements AccountsRepository using pgx.
type PGXAccountsRepository struct {
	pool pgxPool
}

// NewPGXAccountsRepository wires a pgx backed repository.
func NewPGXAccountsRepository(pool *pgxpool.Pool) *PGXAccountsRepository {
	return &PGXAccountsRepository{pool: pool}
}

const accountColumns = `id, name, domain, status, revenue_goal, timeline, milestones, channels, current_stage, next_actions, created_at, updated_at`

// List returns one page of account plans, newest first, and the number of
// plans matching the filter.
func (r *PGXAccountsRepository) List(ctx context.Context, filter dto.AccountFilter) ([]entity.AccountPlan, int, error) {
	var (
		clauses []string
		args    []any
		idx     = 1
	)
	if filter.Status != "" {
		clauses = append(clauses, fmt.Sprintf("status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM account_plans"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count account plans: %w", err)
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := fmt.Sprintf("SELECT %s FROM account_plans%s ORDER BY created_at DESC, name ASC LIMIT $%d OFFSET $%d", accountColumns, where, idx, idx+1)
	args = append(args, filter.PerPage, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list account plans: %w", err)
	}
	defer rows.Close()

	plans := make([]entity.AccountPlan, 0)
	for rows.Next() {
		plan, err := scanAccount(rows)
		if err != nil {
			return nil, 0, err
		}
		plans = append(plans, *plan)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate account plans: %w", err)
	}
	return plans, total, nil
}

// FindByID loads a plan together with its stakeholders.
func (r *PGXAccountsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AccountPlan, error) {
	row := r.pool.QueryRow(ctx, "SELECT "+accountColumns+" FROM account_plans WHERE id = $1", id)
	plan, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	stakeholders, err := r.ListStakeholders(ctx, id)
	if err != nil {
		return nil, err
	}
	plan.Stakeholders = stakeholders
	return plan, nil
}

// Create inserts the plan and its stakeholders in one transaction, filling in
// the generated identifiers and timestamps.
func (r *PGXAccountsRepository) Create(ctx context.Context, plan *entity.AccountPlan) error {
	if plan == nil {
		return fmt.Errorf("account plan payload is nil")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("start account plan tx: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
        INSERT INTO account_plans (name, domain, status, revenue_goal, timeline, milestones, channels, current_stage, next_actions)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at
    `,
		plan.Name,
		plan.Domain,
		string(plan.Status),
		plan.RevenueGoal,
		plan.Timeline,
		nonNil(plan.Milestones),
		nonNil(plan.Channels),
		plan.CurrentStage,
		nonNil(plan.NextActions),
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert account plan: %w", err)
	}

	for i := range plan.Stakeholders {
		s := &plan.Stakeholders[i]
		s.AccountID = plan.ID
		err := tx.QueryRow(ctx, `
            INSERT INTO account_stakeholders (account_id, name, role, influence, engagement, last_contact, notes)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id
        `, plan.ID, s.Name, s.Role, string(s.Influence), s.Engagement, s.LastContact, s.Notes).Scan(&s.ID)
		if err != nil {
			return fmt.Errorf("insert stakeholder %q: %w", s.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit account plan tx: %w", err)
	}
	return nil
}

// ListStakeholders returns the stakeholders of an account, most engaged first.
func (r *PGXAccountsRepository) ListStakeholders(ctx context.Context, accountID uuid.UUID) ([]entity.Stakeholder, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, account_id, name, role, influence, engagement, last_contact, notes
        FROM account_stakeholders
        WHERE account_id = $1
        ORDER BY engagement DESC, name ASC
    `, accountID)
	if err != nil {
		return nil, fmt.Errorf("list stakeholders: %w", err)
	}
	defer rows.Close()

	stakeholders := make([]entity.Stakeholder, 0)
	for rows.Next() {
		var (
			s         entity.Stakeholder
			influence string
		)
		if err := rows.Scan(&s.ID, &s.AccountID, &s.Name, &s.Role, &influence, &s.Engagement, &s.LastContact, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan stakeholder row: %w", err)
		}
		s.Influence = entity.Influence(influence)
		stakeholders = append(stakeholders, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stakeholders: %w", err)
	}
	return stakeholders, nil
}

func scanAccount(row pgx.Row) (*entity.AccountPlan, error) {
	var (
		plan   entity.AccountPlan
		status string
	)
	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.Domain,
		&status,
		&plan.RevenueGoal,
		&plan.Timeline,
		&plan.Milestones,
		&plan.Channels,
		&plan.CurrentStage,
		&plan.NextActions,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan account plan row: %w", err)
	}
	plan.Status = entity.AccountStatus(status)
	return &plan, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
