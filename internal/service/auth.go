package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/marketing-ops/api/internal/auth"
	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/repository"
)

var (
	ErrMissingCredentials = errors.New("email and password must not be empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidRole        = errors.New("role must be admin or marketer")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// AuthService coordinates operator credentials and token issuance.
type AuthService struct {
	operators repository.OperatorsRepository
	jwt       *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(operators repository.OperatorsRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{operators: operators, jwt: jwtManager}
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	op, err := s.operators.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(op.ID.String(), op.Email, op.Role)
}

// CreateOperator provisions a dashboard operator. Role defaults to marketer.
func (s *AuthService) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest) (*dto.OperatorResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	role := strings.ToLower(strings.TrimSpace(req.Role))

	if email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}
	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	switch role {
	case "":
		role = entity.RoleMarketer
	case entity.RoleAdmin, entity.RoleMarketer:
	default:
		return nil, ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	op, err := s.operators.Create(ctx, email, string(hashed), role)
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return &dto.OperatorResponse{ID: op.ID.String(), Email: op.Email, Role: op.Role}, nil
}

// EnsureAdmin provisions an admin operator unless one already uses email.
// It reports whether a new operator was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	_, err := s.CreateOperator(ctx, dto.CreateOperatorRequest{Email: email, Password: password, Role: entity.RoleAdmin})
	if errors.Is(err, ErrEmailAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
