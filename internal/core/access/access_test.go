package access

import (
	"errors"
	"testing"
	"time"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/token"
)

func claimsFor(role domain.Role, subjectID string) *token.Claims {
	return &token.Claims{
		SubjectID: subjectID,
		Role:      role,
		Email:     subjectID + "@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

var allActions = []Action{
	ActionCreateUser,
	ActionCreateProject,
	ActionListProjects,
	ActionReadProject,
	ActionUpdateProject,
	ActionCreateComment,
	ActionListComments,
	ActionCreateMilestone,
	ActionListMilestones,
}

func TestDecide_NilClaimsUnauthenticated(t *testing.T) {
	for _, action := range allActions {
		if err := Decide(nil, action, "owner_1"); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Fatalf("%s: expected ErrUnauthenticated, got %v", action, err)
		}
	}
}

// Admins are never denied, on ownership grounds or otherwise.
func TestDecide_AdminAlwaysAllowed(t *testing.T) {
	admin := claimsFor(domain.RoleAdmin, "admin_1")
	for _, action := range allActions {
		if err := Decide(admin, action, "someone_else"); err != nil {
			t.Fatalf("%s: admin denied: %v", action, err)
		}
	}
}

func TestDecide_ClientAdminOnlyForbidden(t *testing.T) {
	client := claimsFor(domain.RoleClient, "client_1")
	adminOnly := []Action{ActionCreateUser, ActionCreateProject, ActionUpdateProject, ActionCreateMilestone}

	for _, action := range adminOnly {
		// Even "owning" the resource does not help on admin-only actions.
		if err := Decide(client, action, "client_1"); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden, got %v", action, err)
		}
	}
}

func TestDecide_ClientOwnerScoped(t *testing.T) {
	client := claimsFor(domain.RoleClient, "client_1")
	ownerScoped := []Action{ActionReadProject, ActionCreateComment, ActionListComments, ActionListMilestones}

	for _, action := range ownerScoped {
		if err := Decide(client, action, "client_1"); err != nil {
			t.Fatalf("%s: owner denied: %v", action, err)
		}
		if err := Decide(client, action, "client_2"); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s: expected ErrForbidden for non-owner, got %v", action, err)
		}
	}
}

func TestDecide_ClientMayListProjects(t *testing.T) {
	client := claimsFor(domain.RoleClient, "client_1")
	if err := Decide(client, ActionListProjects, ""); err != nil {
		t.Fatalf("list projects denied for client: %v", err)
	}
}

func TestDecide_UnknownRoleForbidden(t *testing.T) {
	odd := claimsFor(domain.Role("superuser"), "x")
	if err := Decide(odd, ActionListProjects, ""); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for unknown role, got %v", err)
	}
}
