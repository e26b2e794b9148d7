package ports

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/token"
)

// RegisterClientInput carries the fields for an admin-created client account.
type RegisterClientInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService covers authentication and account management.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Me resolves the authenticated principal to its persisted account.
	Me(ctx context.Context, claims *token.Claims) (*domain.User, error)
	// RegisterClient creates a client account; admin-only.
	RegisterClient(ctx context.Context, claims *token.Claims, input RegisterClientInput) (*domain.User, error)
	// SeedAdmin inserts the bootstrap admin account if absent.
	SeedAdmin(ctx context.Context, email, password string) error
}
