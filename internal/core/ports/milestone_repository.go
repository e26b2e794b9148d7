package ports

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/domain"
)

// MilestoneRepository defines persistence for project milestones.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *domain.Milestone) (*domain.Milestone, error)
	// ListByProject returns milestones oldest first (created_at ascending).
	ListByProject(ctx context.Context, projectID string) ([]*domain.Milestone, error)
}
