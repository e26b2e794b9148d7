package ports

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/token"
)

// CommentService defines use-case operations for project comments.
type CommentService interface {
	Add(ctx context.Context, claims *token.Claims, projectID, message string) (*domain.Comment, error)
	List(ctx context.Context, claims *token.Claims, projectID string) ([]*domain.Comment, error)
}
