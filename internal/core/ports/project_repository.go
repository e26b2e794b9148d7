package ports

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/domain"
)

// ProjectPatch carries a partial update. Nil fields are left untouched.
type ProjectPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// IsZero reports whether the patch would change nothing.
func (p ProjectPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns projects filtered by owner. An empty ownerID returns all
	// projects (admin scope); a non-empty ownerID is always enforced in the
	// query itself, not post-filtered.
	List(ctx context.Context, ownerID string) ([]*domain.Project, error)
	// Update applies the non-nil patch fields and returns the updated
	// project, or domain.ErrProjectNotFound when no document matched.
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)
}
