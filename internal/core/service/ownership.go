package service

import (
	"context"

	"github.com/clientportal/project-portal/internal/core/ports"
)

// resolveOwner returns the owning client of a project, consulting the
// optional cache first. Only successfully loaded projects are ever cached,
// so a cache hit implies the project exists; malformed or unknown ids
// always fall through to the repository and fail there.
func resolveOwner(ctx context.Context, projects ports.ProjectRepository, cache ports.OwnerCache, projectID string) (string, error) {
	if cache != nil {
		if owner, ok := cache.Get(ctx, projectID); ok {
			return owner, nil
		}
	}

	project, err := projects.FindByID(ctx, projectID)
	if err != nil {
		return "", err
	}

	if cache != nil {
		cache.Set(ctx, projectID, project.OwnerID)
	}
	return project.OwnerID, nil
}
