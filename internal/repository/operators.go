package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/marketing-ops/api/internal/entity"
)

var (
	// ErrOperatorNotFound is returned when no operator matches the lookup criteria.
	ErrOperatorNotFound = errors.New("operator not found")
	ErrEmailDuplicate   = errors.New("email already exists")
)

// OperatorsRepository declares operations for dashboard operators.
type OperatorsRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.Operator, error)
	Create(ctx context.Context, email, passwordHash, role string) (*entity.Operator, error)
}

// PGXOperatorsRepository implements OperatorsRepository with pgx.
type PGXOperatorsRepository struct {
	pool pgxPool
}

// NewPGXOperatorsRepository instantiates an operators repository.
func NewPGXOperatorsRepository(pool *pgxpool.Pool) *PGXOperatorsRepository {
	return &PGXOperatorsRepository{pool: pool}
}

// FindByEmail fetches an operator by email if present.
func (r *PGXOperatorsRepository) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, email, password_hash, role, created_at, updated_at FROM operators WHERE email = $1`, email)

	var op entity.Operator
	if err := row.Scan(&op.ID, &op.Email, &op.PasswordHash, &op.Role, &op.CreatedAt, &op.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOperatorNotFound
		}
		return nil, fmt.Errorf("query operator by email: %w", err)
	}
	return &op, nil
}

// Create inserts a new operator row.
func (r *PGXOperatorsRepository) Create(ctx context.Context, email, passwordHash, role string) (*entity.Operator, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO operators (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, email, password_hash, role, created_at, updated_at
    `, email, passwordHash, role)

	var op entity.Operator
	if err := row.Scan(&op.ID, &op.Email, &op.PasswordHash, &op.Role, &op.CreatedAt, &op.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert operator: %w", err)
	}
	return &op, nil
}
