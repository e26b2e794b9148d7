package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/ports"
)

// In-memory stub milestone repository.
type stubMilestoneRepo struct {
	milestones []*domain.Milestone
	nextID     int
}

func (r *stubMilestoneRepo) Create(_ context.Context, m *domain.Milestone) (*domain.Milestone, error) {
	r.nextID++
	clone := *m
	clone.ID = fmt.Sprintf("milestone_%d", r.nextID)
	r.milestones = append(r.milestones, &clone)
	out := clone
	return &out, nil
}

// ListByProject returns oldest first, mirroring the Mongo sort.
func (r *stubMilestoneRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Milestone, error) {
	out := []*domain.Milestone{}
	for _, m := range r.milestones {
		if m.ProjectID == projectID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func TestMilestoneService_Add_AdminOnly(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.add(&domain.Project{Title: "P1", OwnerID: "client_1", Status: domain.ProjectActive})

	svc := NewMilestoneService(&stubMilestoneRepo{}, projects, nil, discardLogger)

	// Owning the project does not grant milestone creation.
	_, err := svc.Add(context.Background(), clientClaims("client_1"), p.ID, ports.AddMilestoneInput{Title: "Kickoff"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for client, got %v", err)
	}

	due := time.Now().Add(72 * time.Hour).UTC()
	m, err := svc.Add(context.Background(), adminClaims("admin_1"), p.ID, ports.AddMilestoneInput{Title: " Kickoff ", DueDate: &due})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if m.Title != "Kickoff" {
		t.Fatalf("title not trimmed: %q", m.Title)
	}
	if m.Status != domain.MilestonePending {
		t.Fatalf("expected default status %q, got %q", domain.MilestonePending, m.Status)
	}
	if m.DueDate == nil || !m.DueDate.Equal(due) {
		t.Fatalf("due date not preserved: %v", m.DueDate)
	}
}

func TestMilestoneService_Add_ProjectMustExist(t *testing.T) {
	svc := NewMilestoneService(&stubMilestoneRepo{}, newStubProjectRepo(), nil, discardLogger)

	_, err := svc.Add(context.Background(), adminClaims("admin_1"), "missing", ports.AddMilestoneInput{Title: "Kickoff"})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestMilestoneService_List_OldestFirstAndScoped(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.add(&domain.Project{Title: "P1", OwnerID: "client_1", Status: domain.ProjectActive})

	now := time.Now().UTC()
	repo := &stubMilestoneRepo{milestones: []*domain.Milestone{
		{ID: "m_new", ProjectID: p.ID, Title: "Launch", Status: domain.MilestonePending, CreatedAt: now},
		{ID: "m_old", ProjectID: p.ID, Title: "Kickoff", Status: domain.MilestoneDone, CreatedAt: now.Add(-time.Hour)},
	}}

	svc := NewMilestoneService(repo, projects, nil, discardLogger)

	got, err := svc.List(context.Background(), clientClaims("client_1"), p.ID)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "m_old" || got[1].ID != "m_new" {
		t.Fatalf("milestones not oldest first: %+v", got)
	}

	if _, err := svc.List(context.Background(), clientClaims("client_2"), p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other client, got %v", err)
	}

	if _, err := svc.List(context.Background(), adminClaims("admin_1"), p.ID); err != nil {
		t.Fatalf("admin List returned error: %v", err)
	}
}
