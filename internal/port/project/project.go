package project

import (
	"context"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
)

//go:generate mockgen -destination=../../mocks/project_repository.go -package=mocks -mock_names=Repository=MockProjectRepository . Repository

// Repository reads the projects collection from the backing store.
// [DIP] service/project depends on this interface, not on a concrete storage.
type Repository interface {
	// List returns every project ordered by created_at descending.
	List(ctx context.Context) ([]domainproject.Project, error)
	// Ping checks that the store is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
