package ports

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/domain"
)

// CommentRepository defines persistence for project comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// ListByProject returns comments newest first (created_at descending).
	ListByProject(ctx context.Context, projectID string) ([]*domain.Comment, error)
}
