package ports

import (
	"context"
	"time"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/token"
)

// AddMilestoneInput carries the fields for a new milestone.
type AddMilestoneInput struct {
	Title   string
	Status  string
	DueDate *time.Time
}

// MilestoneService defines use-case operations for project milestones.
type MilestoneService interface {
	Add(ctx context.Context, claims *token.Claims, projectID string, input AddMilestoneInput) (*domain.Milestone, error)
	List(ctx context.Context, claims *token.Claims, projectID string) ([]*domain.Milestone, error)
}
