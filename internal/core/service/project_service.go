package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/clientportal/project-portal/internal/core/access"
	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/ports"
	"github.com/clientportal/project-portal/internal/core/token"
)

// ProjectService implements project use cases with access control applied
// before any storage mutation.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, logger: logger}
}

// Create inserts a new project. Admin-only; the owner must resolve to an
// existing user with the client role.
func (s *ProjectService) Create(ctx context.Context, claims *token.Claims, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := access.Decide(claims, access.ActionCreateProject, ""); err != nil {
		return nil, err
	}

	owner, err := s.users.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	if owner.Role != domain.RoleClient {
		return nil, domain.ErrClientNotFound
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectActive
	}

	project := &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		OwnerID:     owner.ID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner_id", created.OwnerID).Msg("project created")
	return created, nil
}

// List returns the caller's visible projects. The owner filter for clients
// is part of the repository query, not applied after the fact.
func (s *ProjectService) List(ctx context.Context, claims *token.Claims) ([]*domain.Project, error) {
	if err := access.Decide(claims, access.ActionListProjects, ""); err != nil {
		return nil, err
	}

	var ownerFilter string
	switch claims.Role {
	case domain.RoleAdmin:
		ownerFilter = ""
	case domain.RoleClient:
		ownerFilter = claims.SubjectID
	default:
		return nil, domain.ErrForbidden
	}

	return s.projects.List(ctx, ownerFilter)
}

// Get loads a single project. Existence is resolved before ownership, so a
// missing project yields not-found for every role.
func (s *ProjectService) Get(ctx context.Context, claims *token.Claims, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := access.Decide(claims, access.ActionReadProject, project.OwnerID); err != nil {
		return nil, err
	}

	return project, nil
}

// Update applies a partial update. Admin-only; a patch with no effective
// fields is a validation error, not a no-op success.
func (s *ProjectService) Update(ctx context.Context, claims *token.Claims, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	if err := access.Decide(claims, access.ActionUpdateProject, ""); err != nil {
		return nil, err
	}

	if patch.IsZero() {
		return nil, domain.ErrEmptyUpdate
	}

	updated, err := s.projects.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", updated.ID).Msg("project updated")
	return updated, nil
}
