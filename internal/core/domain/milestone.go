package domain

import "time"

// Milestone status values. Stored as plain strings like project status.
const (
	MilestonePending = "pending"
	MilestoneDone    = "done"
)

type Milestone struct {
	ID        string     `json:"id"`
	ProjectID string     `json:"project_id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
