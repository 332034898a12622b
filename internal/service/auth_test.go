package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/marketing-ops/api/internal/auth"
	"github.com/octobees/marketing-ops/api/internal/dto"
	"github.com/octobees/marketing-ops/api/internal/entity"
	"github.com/octobees/marketing-ops/api/internal/repository"
)

type mockOperatorsRepository struct {
	findByEmail func(ctx context.Context, email string) (*entity.Operator, error)
	create      func(ctx context.Context, email, passwordHash, role string) (*entity.Operator, error)
}

func (m *mockOperatorsRepository) FindByEmail(ctx context.Context, email string) (*entity.Operator, error) {
	if m.findByEmail != nil {
		return m.findByEmail(ctx, email)
	}
	return nil, errors.New("findByEmail not implemented")
}

func (m *mockOperatorsRepository) Create(ctx context.Context, email, passwordHash, role string) (*entity.Operator, error) {
	if m.create != nil {
		return m.create(ctx, email, passwordHash, role)
	}
	return nil, errors.New("create not implemented")
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected bcrypt error: %v", err)
	}

	tests := map[string]struct {
		email       string
		password    string
		repo        repository.OperatorsRepository
		expectError error
	}{
		"empty credentials": {
			repo:        &mockOperatorsRepository{},
			expectError: ErrMissingCredentials,
		},
		"operator not found": {
			email:    "john@example.com",
			password: "whatever",
			repo: &mockOperatorsRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.Operator, error) {
					return nil, repository.ErrOperatorNotFound
				},
			},
			expectError: ErrInvalidCredentials,
		},
		"password mismatch": {
			email:    "john@example.com",
			password: "wrong",
			repo: &mockOperatorsRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.Operator, error) {
					return &entity.Operator{ID: uuid.New(), Email: email, PasswordHash: string(hashed), Role: entity.RoleMarketer}, nil
				},
			},
			expectError: ErrInvalidCredentials,
		},
		"success": {
			email:    " John@Example.com ",
			password: "super-secret",
			repo: &mockOperatorsRepository{
				findByEmail: func(ctx context.Context, email string) (*entity.Operator, error) {
					if email != "john@example.com" {
						return nil, repository.ErrOperatorNotFound
					}
					return &entity.Operator{
						ID:           uuid.MustParse("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
						Email:        email,
						PasswordHash: string(hashed),
						Role:         entity.RoleAdmin,
					}, nil
				},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			jwtManager := auth.NewJWTManager("test-secret", 0)
			service := NewAuthService(tt.repo, jwtManager)

			token, err := service.Login(context.Background(), tt.email, tt.password)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}
				if token != "" {
					t.Fatalf("expected empty token on error, got %q", token)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			claims, err := jwtManager.ParseToken(token)
			if err != nil {
				t.Fatalf("token should parse: %v", err)
			}
			if claims.Role != entity.RoleAdmin || claims.Subject != "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa" {
				t.Fatalf("unexpected claims: %+v", claims)
			}
		})
	}
}

func TestAuthService_CreateOperator(t *testing.T) {
	created := func(ctx context.Context, email, passwordHash, role string) (*entity.Operator, error) {
		if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("password123")) != nil {
			return nil, errors.New("password was not hashed")
		}
		return &entity.Operator{ID: uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"), Email: email, Role: role}, nil
	}

	tests := map[string]struct {
		req         dto.CreateOperatorRequest
		repo        repository.OperatorsRepository
		expectError error
		expectRole  string
	}{
		"empty payload": {
			repo:        &mockOperatorsRepository{},
			expectError: ErrMissingCredentials,
		},
		"short password": {
			req:         dto.CreateOperatorRequest{Email: "a@example.com", Password: "short"},
			repo:        &mockOperatorsRepository{},
			expectError: ErrPasswordTooShort,
		},
		"unknown role": {
			req:         dto.CreateOperatorRequest{Email: "a@example.com", Password: "password123", Role: "owner"},
			repo:        &mockOperatorsRepository{},
			expectError: ErrInvalidRole,
		},
		"duplicate email": {
			req: dto.CreateOperatorRequest{Email: "a@example.com", Password: "password123"},
			repo: &mockOperatorsRepository{
				create: func(ctx context.Context, email, passwordHash, role string) (*entity.Operator, error) {
					return nil, repository.ErrEmailDuplicate
				},
			},
			expectError: ErrEmailAlreadyExists,
		},
		"default role": {
			req:        dto.CreateOperatorRequest{Email: "Jane@Example.com", Password: "password123"},
			repo:       &mockOperatorsRepository{create: created},
			expectRole: entity.RoleMarketer,
		},
		"admin role": {
			req:        dto.CreateOperatorRequest{Email: "root@example.com", Password: "password123", Role: " ADMIN "},
			repo:       &mockOperatorsRepository{create: created},
			expectRole: entity.RoleAdmin,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			service := NewAuthService(tt.repo, auth.NewJWTManager("secret", 0))

			resp, err := service.CreateOperator(context.Background(), tt.req)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected error %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Role != tt.expectRole {
				t.Fatalf("expected role %s, got %s", tt.expectRole, resp.Role)
			}
			if resp.ID != "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb" {
				t.Fatalf("unexpected id: %s", resp.ID)
			}
		})
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	var role string
	repo := &mockOperatorsRepository{
		create: func(ctx context.Context, email, passwordHash, r string) (*entity.Operator, error) {
			role = r
			return &entity.Operator{ID: uuid.New(), Email: email, Role: r}, nil
		},
	}
	service := NewAuthService(repo, auth.NewJWTManager("secret", 0))

	created, err := service.EnsureAdmin(context.Background(), "root@example.com", "password123")
	if err != nil || !created {
		t.Fatalf("expected admin to be created, got %v %v", created, err)
	}
	if role != entity.RoleAdmin {
		t.Fatalf("expected admin role, got %s", role)
	}

	repo.create = func(ctx context.Context, email, passwordHash, r string) (*entity.Operator, error) {
		return nil, repository.ErrEmailDuplicate
	}
	created, err = service.EnsureAdmin(context.Background(), "root@example.com", "password123")
	if err != nil || created {
		t.Fatalf("expected existing admin to be kept, got %v %v", created, err)
	}
}
