package ports

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/token"
)

// CreateProjectInput carries the fields for a new project.
type CreateProjectInput struct {
	Title       string
	Description string
	Status      string
	// OwnerID must reference an existing user with the client role.
	OwnerID string
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, claims *token.Claims, input CreateProjectInput) (*domain.Project, error)
	// List returns all projects for admins and only owned projects for
	// clients; the scope filter is applied server-side in the query.
	List(ctx context.Context, claims *token.Claims) ([]*domain.Project, error)
	Get(ctx context.Context, claims *token.Claims, id string) (*domain.Project, error)
	// Update applies a partial update; an empty patch is rejected.
	Update(ctx context.Context, claims *token.Claims, id string, patch ProjectPatch) (*domain.Project, error)
}
