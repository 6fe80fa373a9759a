package project

import (
	"context"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	portproject "github.com/alanyang/scout-interest/internal/port/project"
)

type Service struct {
	repo portproject.Repository
}

func NewService(repo portproject.Repository) *Service {
	return &Service{repo: repo}
}

// List issues exactly one store read. On success the slice is never nil; on failure
// the error is a *domainproject.StoreError.
func (s *Service) List(ctx context.Context) ([]domainproject.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, &domainproject.StoreError{Err: err}
	}
	if projects == nil {
		projects = []domainproject.Project{}
	}
	return projects, nil
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return &domainproject.StoreError{Err: err}
	}
	return nil
}
