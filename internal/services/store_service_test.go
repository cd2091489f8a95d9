package services_test

import (
	"context"
	"testing"

	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreService_CreateStore(t *testing.T) {
	repo := new(MockStoreRepository)
	service := services.NewStoreService(repo, new(MockAuthorizer), nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(s *models.Store) bool {
		return s.Name == "Main Street" && s.UserID == "user-1"
	})).Return(nil).Once()

	store, err := service.CreateStore(ctx, "user-1", "Main Street")
	require.NoError(t, err)
	assert.Equal(t, "user-1", store.UserID)
	repo.AssertExpectations(t)

	_, err = service.CreateStore(ctx, "", "Main Street")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestStoreService_ListUserStores(t *testing.T) {
	repo := new(MockStoreRepository)
	service := services.NewStoreService(repo, new(MockAuthorizer), nil)
	ctx := context.Background()

	repo.On("ListByUser", ctx, "user-1").Return([]models.Store{{ID: "s1"}, {ID: "s2"}}, nil).Once()

	stores, err := service.ListUserStores(ctx, "user-1")
	assert.NoError(t, err)
	assert.Len(t, stores, 2)

	_, err = service.ListUserStores(ctx, "")
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
	repo.AssertExpectations(t)
}

func TestStoreService_DeleteStore_Denied(t *testing.T) {
	repo := new(MockStoreRepository)
	guard := new(MockAuthorizer)
	service := services.NewStoreService(repo, guard, nil)
	ctx := context.Background()

	guard.On("Authorize", ctx, "user-2", "s1").Return(services.ErrUnauthorized).Once()

	count, err := service.DeleteStore(ctx, "user-2", "s1")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.Zero(t, count)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStoreService_RenameStore(t *testing.T) {
	repo := new(MockStoreRepository)
	guard := new(MockAuthorizer)
	publisher := new(MockPublisher)
	service := services.NewStoreService(repo, guard, publisher)
	ctx := context.Background()

	guard.On("Authorize", ctx, "user-1", "s1").Return(nil).Once()
	repo.On("Rename", ctx, &models.Store{ID: "s1", Name: "Renamed"}).Return(nil).Once()
	publisher.On("Publish", services.CatalogExchange, "store.updated", mock.Anything).Return(nil).Once()

	store, err := service.RenameStore(ctx, "user-1", "s1", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", store.Name)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestBillboardService_CreateBillboard(t *testing.T) {
	repo := new(MockBillboardRepository)
	guard := new(MockAuthorizer)
	service := services.NewBillboardService(repo, guard, nil)
	ctx := context.Background()

	billboard := &models.Billboard{StoreID: "s1", Label: "Summer", ImageURL: "https://img.example/b.png"}

	guard.On("Authorize", ctx, "user-1", "s1").Return(nil).Once()
	repo.On("Create", ctx, billboard).Return(nil).Once()
	assert.NoError(t, service.CreateBillboard(ctx, "user-1", billboard))

	guard.On("Authorize", ctx, "", "s1").Return(services.ErrUnauthenticated).Once()
	assert.ErrorIs(t, service.CreateBillboard(ctx, "", billboard), services.ErrUnauthenticated)

	repo.AssertNumberOfCalls(t, "Create", 1)
	guard.AssertExpectations(t)
}
