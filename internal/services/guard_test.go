package services_test

import (
	"context"
	"fmt"
	"testing"

	"tokoadmin/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStoreGuard_Authorize(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		userID    string
		storeID   string
		setupMock func(*MockStoreRepository)
		wantErr   error
	}{
		{
			name:    "owner is allowed",
			userID:  "user-1",
			storeID: "store-1",
			setupMock: func(m *MockStoreRepository) {
				m.On("IsOwnedBy", ctx, "store-1", "user-1").Return(true, nil).Once()
			},
		},
		{
			name:    "missing identity",
			userID:  "",
			storeID: "store-1",
			wantErr: services.ErrUnauthenticated,
		},
		{
			name:    "missing store id",
			userID:  "user-1",
			storeID: "",
			wantErr: services.ErrUnauthorized,
		},
		{
			name:    "someone else's store",
			userID:  "user-2",
			storeID: "store-1",
			setupMock: func(m *MockStoreRepository) {
				m.On("IsOwnedBy", ctx, "store-1", "user-2").Return(false, nil).Once()
			},
			wantErr: services.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockStoreRepository)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}
			guard := services.NewStoreGuard(repo)

			err := guard.Authorize(ctx, tt.userID, tt.storeID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			repo.AssertExpectations(t)
			if tt.setupMock == nil {
				repo.AssertNotCalled(t, "IsOwnedBy", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestStoreGuard_LookupFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockStoreRepository)
	repo.On("IsOwnedBy", ctx, "store-1", "user-1").Return(false, fmt.Errorf("connection reset")).Once()

	err := services.NewStoreGuard(repo).Authorize(ctx, "user-1", "store-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrUnauthorized)
	assert.Contains(t, err.Error(), "connection reset")
}
