package domain

import "time"

// Comment is immutable once posted. AuthorRole is captured from the
// author's claims at creation time so listings do not need a user lookup.
type Comment struct {
	ID         string    `json:"id"`
	ProjectID  string    `json:"project_id"`
	AuthorID   string    `json:"author_id"`
	AuthorRole Role      `json:"author_role"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
