// Package access renders allow/deny decisions for (claims, action, resource)
// triples. Decisions are pure: resource ownership is passed in already
// loaded, so callers resolve not-found before consulting this package.
package access

import (
	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/token"
)

// Action enumerates every operation subject to a policy decision.
type Action int

const (
	ActionCreateUser Action = iota
	ActionCreateProject
	ActionListProjects
	ActionReadProject
	ActionUpdateProject
	ActionCreateComment
	ActionListComments
	ActionCreateMilestone
	ActionListMilestones
)

// String returns the action name used in logs and metrics labels.
func (a Action) String() string {
	switch a {
	case ActionCreateUser:
		return "create_user"
	case ActionCreateProject:
		return "create_project"
	case ActionListProjects:
		return "list_projects"
	case ActionReadProject:
		return "read_project"
	case ActionUpdateProject:
		return "update_project"
	case ActionCreateComment:
		return "create_comment"
	case ActionListComments:
		return "list_comments"
	case ActionCreateMilestone:
		return "create_milestone"
	case ActionListMilestones:
		return "list_milestones"
	default:
		return "unknown"
	}
}

type policy struct {
	adminOnly bool
	// ownerScoped actions require the resource's owner to match the
	// caller's subject id unless the caller is an admin.
	ownerScoped bool
}

var policies = map[Action]policy{
	ActionCreateUser:      {adminOnly: true},
	ActionCreateProject:   {adminOnly: true},
	ActionListProjects:    {}, // scoping handled by the mandatory repository filter
	ActionReadProject:     {ownerScoped: true},
	ActionUpdateProject:   {adminOnly: true},
	ActionCreateComment:   {ownerScoped: true},
	ActionListComments:    {ownerScoped: true},
	ActionCreateMilestone: {adminOnly: true},
	ActionListMilestones:  {ownerScoped: true},
}

// Decide evaluates the policy rules in order, first match wins:
//
//  1. absent claims            → ErrUnauthenticated
//  2. admin-only, non-admin    → ErrForbidden
//  3. owner-scoped, not owner  → ErrForbidden
//  4. otherwise                → allow (nil)
//
// ownerID is the owning client of the target resource; pass "" for actions
// that are not owner-scoped.
func Decide(claims *token.Claims, action Action, ownerID string) error {
	if claims == nil {
		return domain.ErrUnauthenticated
	}

	pol, ok := policies[action]
	if !ok {
		return domain.ErrForbidden
	}

	switch claims.Role {
	case domain.RoleAdmin:
		// Admins are never denied on ownership grounds.
		return nil
	case domain.RoleClient:
		if pol.adminOnly {
			return domain.ErrForbidden
		}
		if pol.ownerScoped && ownerID != claims.SubjectID {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrForbidden
	}
}
