package domain

import "time"

// Intended project status domain. Stored as a plain string for
// compatibility with pre-existing documents; enforced at the API boundary.
const (
	ProjectActive     = "active"
	ProjectInProgress = "in_progress"
	ProjectDone       = "done"
)

// Project is owned by exactly one client; ownership never transfers.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}
