package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientportal/project-portal/internal/core/access"
	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/ports"
	"github.com/clientportal/project-portal/internal/core/token"
)

// MilestoneService implements milestone use cases.
type MilestoneService struct {
	milestones ports.MilestoneRepository
	projects   ports.ProjectRepository
	owners     ports.OwnerCache // optional, may be nil
	logger     zerolog.Logger
}

func NewMilestoneService(milestones ports.MilestoneRepository, projects ports.ProjectRepository, owners ports.OwnerCache, logger zerolog.Logger) *MilestoneService {
	return &MilestoneService{milestones: milestones, projects: projects, owners: owners, logger: logger}
}

// Add creates a milestone on a project. Admin-only; the project must exist.
func (s *MilestoneService) Add(ctx context.Context, claims *token.Claims, projectID string, input ports.AddMilestoneInput) (*domain.Milestone, error) {
	if err := access.Decide(claims, access.ActionCreateMilestone, ""); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrInvalidInput
	}

	status := input.Status
	if status == "" {
		status = domain.MilestonePending
	}

	if _, err := resolveOwner(ctx, s.projects, s.owners, projectID); err != nil {
		return nil, err
	}

	milestone := &domain.Milestone{
		ProjectID: projectID,
		Title:     title,
		Status:    status,
		DueDate:   input.DueDate,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.milestones.Create(ctx, milestone)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", projectID).Str("milestone_id", created.ID).Msg("milestone created")
	return created, nil
}

// List returns a project's milestones, oldest first.
func (s *MilestoneService) List(ctx context.Context, claims *token.Claims, projectID string) ([]*domain.Milestone, error) {
	ownerID, err := resolveOwner(ctx, s.projects, s.owners, projectID)
	if err != nil {
		return nil, err
	}

	if err := access.Decide(claims, access.ActionListMilestones, ownerID); err != nil {
		return nil, err
	}

	return s.milestones.ListByProject(ctx, projectID)
}
