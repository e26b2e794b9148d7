package handler

import (
	"time"

	"github.com/clientportal/project-portal/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}

// --- Users ---

// Password is capped at 72 bytes, the bcrypt input limit.
type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// --- Projects ---

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=active in_progress done"`
	ClientID    string `json:"client_id"   validate:"required"`
}

type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=active in_progress done"`
}

type projectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	OwnerID     string `json:"owner_id"`
	CreatedAt   string `json:"created_at"`
}

// --- Comments ---

type createCommentRequest struct {
	Message string `json:"message" validate:"required"`
}

type commentResponse struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	AuthorID   string `json:"author_id"`
	AuthorRole string `json:"author_role"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}

// --- Milestones ---

type createMilestoneRequest struct {
	Title   string     `json:"title"    validate:"required"`
	Status  string     `json:"status"   validate:"omitempty,oneof=pending done"`
	DueDate *time.Time `json:"due_date"`
}

type milestoneResponse struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	DueDate   *string `json:"due_date"`
	CreatedAt string  `json:"created_at"`
}

// --- Mappers ---
//
// Timestamps cross the boundary as RFC3339 UTC strings; identifiers as
// ObjectID hex. Both conversions live here so the JSON contract is not
// coupled to internal representation changes.

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Status:      p.Status,
		OwnerID:     p.OwnerID,
		CreatedAt:   formatTime(p.CreatedAt),
	}
}

func toProjectResponses(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		ProjectID:  c.ProjectID,
		AuthorID:   c.AuthorID,
		AuthorRole: string(c.AuthorRole),
		Message:    c.Message,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func toCommentResponses(comments []*domain.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentResponse(c))
	}
	return out
}

func toMilestoneResponse(m *domain.Milestone) milestoneResponse {
	var due *string
	if m.DueDate != nil {
		s := formatTime(*m.DueDate)
		due = &s
	}
	return milestoneResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Title:     m.Title,
		Status:    m.Status,
		DueDate:   due,
		CreatedAt: formatTime(m.CreatedAt),
	}
}

func toMilestoneResponses(milestones []*domain.Milestone) []milestoneResponse {
	out := make([]milestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, toMilestoneResponse(m))
	}
	return out
}
