package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/ports"
)

// In-memory stub project repository.
type stubProjectRepo struct {
	projects       map[string]*domain.Project
	nextID         int
	lastListFilter string
	findCalls      int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) add(p *domain.Project) *domain.Project {
	r.nextID++
	clone := *p
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("project_%d", r.nextID)
	}
	r.projects[clone.ID] = &clone
	out := clone
	return &out
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	return r.add(p), nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	r.findCalls++
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

// List enforces the owner filter in the "query", mirroring the Mongo repo.
func (r *stubProjectRepo) List(_ context.Context, ownerID string) ([]*domain.Project, error) {
	r.lastListFilter = ownerID
	out := []*domain.Project{}
	for _, p := range r.projects {
		if ownerID != "" && p.OwnerID != ownerID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, patch ports.ProjectPatch) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	clone := *p
	return &clone, nil
}

func strptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestProjectService_Create_AdminOnly(t *testing.T) {
	users := newStubUserRepo()
	owner := users.add(&domain.User{Email: "c1@example.com", Role: domain.RoleClient})

	svc := NewProjectService(newStubProjectRepo(), users, discardLogger)
	input := ports.CreateProjectInput{Title: "Site redesign", OwnerID: owner.ID}

	if _, err := svc.Create(context.Background(), clientClaims(owner.ID), input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client caller, got %v", err)
	}

	project, err := svc.Create(context.Background(), adminClaims("admin_1"), input)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if project.OwnerID != owner.ID {
		t.Fatalf("unexpected owner: %q", project.OwnerID)
	}
	if project.Status != domain.ProjectActive {
		t.Fatalf("expected default status %q, got %q", domain.ProjectActive, project.Status)
	}
	if project.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestProjectService_Create_OwnerMustBeClient(t *testing.T) {
	users := newStubUserRepo()
	admin := users.add(&domain.User{Email: "boss@example.com", Role: domain.RoleAdmin})

	svc := NewProjectService(newStubProjectRepo(), users, discardLogger)

	// Unknown owner id.
	_, err := svc.Create(context.Background(), adminClaims("admin_1"), ports.CreateProjectInput{Title: "X", OwnerID: "missing"})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound for unknown owner, got %v", err)
	}

	// Existing user, but not a client.
	_, err = svc.Create(context.Background(), adminClaims("admin_1"), ports.CreateProjectInput{Title: "X", OwnerID: admin.ID})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound for admin owner, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestProjectService_List_Scoping(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{Title: "P1", OwnerID: "client_1", Status: domain.ProjectActive})
	projects.add(&domain.Project{Title: "P2", OwnerID: "client_2", Status: domain.ProjectActive})

	svc := NewProjectService(projects, newStubUserRepo(), discardLogger)

	all, err := svc.List(context.Background(), adminClaims("admin_1"))
	if err != nil {
		t.Fatalf("admin List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin should see 2 projects, got %d", len(all))
	}
	if projects.lastListFilter != "" {
		t.Fatalf("admin list should not be owner-filtered, got %q", projects.lastListFilter)
	}

	own, err := svc.List(context.Background(), clientClaims("client_1"))
	if err != nil {
		t.Fatalf("client List returned error: %v", err)
	}
	if len(own) != 1 || own[0].Title != "P1" {
		t.Fatalf("client should see exactly their project, got %+v", own)
	}
	// The scope filter must be part of the repository query itself.
	if projects.lastListFilter != "client_1" {
		t.Fatalf("client list not filtered in the query, filter=%q", projects.lastListFilter)
	}
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestProjectService_Get_NotFoundBeforeOwnership(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), newStubUserRepo(), discardLogger)

	// A client probing a nonexistent id gets not-found, not forbidden.
	if _, err := svc.Get(context.Background(), clientClaims("client_2"), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectService_Get_Ownership(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.add(&domain.Project{Title: "P1", OwnerID: "client_1", Status: domain.ProjectActive})

	svc := NewProjectService(projects, newStubUserRepo(), discardLogger)

	if _, err := svc.Get(context.Background(), clientClaims("client_2"), p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	got, err := svc.Get(context.Background(), clientClaims("client_1"), p.ID)
	if err != nil {
		t.Fatalf("owner Get returned error: %v", err)
	}
	if got.ID != p.ID {
		t.Fatalf("unexpected project: %q", got.ID)
	}

	if _, err := svc.Get(context.Background(), adminClaims("admin_1"), p.ID); err != nil {
		t.Fatalf("admin Get returned error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestProjectService_Update_EmptyPatchRejected(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.add(&domain.Project{Title: "P1", OwnerID: "client_1", Status: domain.ProjectActive})

	svc := NewProjectService(projects, newStubUserRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), adminClaims("admin_1"), p.ID, ports.ProjectPatch{}); !errors.Is(err, domain.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestProjectService_Update_PartialFields(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.add(&domain.Project{
		Title:       "P1",
		Description: "original description",
		OwnerID:     "client_1",
		Status:      domain.ProjectActive,
		CreatedAt:   time.Now().UTC(),
	})

	svc := NewProjectService(projects, newStubUserRepo(), discardLogger)

	updated, err := svc.Update(context.Background(), adminClaims("admin_1"), p.ID, ports.ProjectPatch{
		Status: strptr(domain.ProjectDone),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Status != domain.ProjectDone {
		t.Fatalf("status not updated: %q", updated.Status)
	}
	if updated.Title != "P1" || updated.Description != "original description" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.OwnerID != "client_1" {
		t.Fatalf("ownership must never change, got %q", updated.OwnerID)
	}
}

func TestProjectService_Update_AdminOnly(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.add(&domain.Project{Title: "P1", OwnerID: "client_1", Status: domain.ProjectActive})

	svc := NewProjectService(projects, newStubUserRepo(), discardLogger)

	// Even the owning client cannot update.
	_, err := svc.Update(context.Background(), clientClaims("client_1"), p.ID, ports.ProjectPatch{Title: strptr("New")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_Update_NotFound(t *testing.T) {
	svc := NewProjectService(newStubProjectRepo(), newStubUserRepo(), discardLogger)

	_, err := svc.Update(context.Background(), adminClaims("admin_1"), "missing", ports.ProjectPatch{Title: strptr("New")})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
