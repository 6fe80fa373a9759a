package project_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainproject "github.com/alanyang/scout-interest/internal/domain/project"
	"github.com/alanyang/scout-interest/internal/mocks"
	projectsvc "github.com/alanyang/scout-interest/internal/service/project"
)

func newProjectSvc(t *testing.T) (*projectsvc.Service, *mocks.MockProjectRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepository(ctrl)
	return projectsvc.NewService(repo), repo
}

func TestList_Success(t *testing.T) {
	svc, repo := newProjectSvc(t)
	newer, err := domainproject.Parse([]byte(`{"id":2,"name":"newer"}`))
	require.NoError(t, err)
	older, err := domainproject.Parse([]byte(`{"id":1,"name":"older"}`))
	require.NoError(t, err)
	expected := []domainproject.Project{newer, older}
	repo.EXPECT().List(gomock.Any()).Return(expected, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestList_NilBecomesEmpty(t *testing.T) {
	svc, repo := newProjectSvc(t)
	repo.EXPECT().List(gomock.Any()).Return(nil, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestList_RepoError(t *testing.T) {
	svc, repo := newProjectSvc(t)
	cause := errors.New("relation \"projects\" does not exist")
	repo.EXPECT().List(gomock.Any()).Return(nil, cause)

	got, err := svc.List(context.Background())
	require.Error(t, err)
	assert.Nil(t, got)

	var storeErr *domainproject.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause.Error(), err.Error())
}

func TestPing(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		svc, repo := newProjectSvc(t)
		repo.EXPECT().Ping(gomock.Any()).Return(nil)
		assert.NoError(t, svc.Ping(context.Background()))
	})

	t.Run("down", func(t *testing.T) {
		svc, repo := newProjectSvc(t)
		repo.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		err := svc.Ping(context.Background())
		var storeErr *domainproject.StoreError
		assert.ErrorAs(t, err, &storeErr)
	})
}
