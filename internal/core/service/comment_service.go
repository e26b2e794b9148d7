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

// CommentService implements comment use cases. Comments are immutable once
// posted.
type CommentService struct {
	comments ports.CommentRepository
	projects ports.ProjectRepository
	owners   ports.OwnerCache // optional, may be nil
	logger   zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, projects ports.ProjectRepository, owners ports.OwnerCache, logger zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, projects: projects, owners: owners, logger: logger}
}

// Add posts a comment on a project. The project must exist (checked before
// ownership); allowed for admins and the owning client.
func (s *CommentService) Add(ctx context.Context, claims *token.Claims, projectID, message string) (*domain.Comment, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrInvalidInput
	}

	ownerID, err := resolveOwner(ctx, s.projects, s.owners, projectID)
	if err != nil {
		return nil, err
	}

	if err := access.Decide(claims, access.ActionCreateComment, ownerID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ProjectID:  projectID,
		AuthorID:   claims.SubjectID,
		AuthorRole: claims.Role,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("project_id", projectID).Str("author_id", claims.SubjectID).Msg("comment posted")
	return created, nil
}

// List returns a project's comments, newest first.
func (s *CommentService) List(ctx context.Context, claims *token.Claims, projectID string) ([]*domain.Comment, error) {
	ownerID, err := resolveOwner(ctx, s.projects, s.owners, projectID)
	if err != nil {
		return nil, err
	}

	if err := access.Decide(claims, access.ActionListComments, ownerID); err != nil {
		return nil, err
	}

	return s.comments.ListByProject(ctx, projectID)
}
