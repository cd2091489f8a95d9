package services_test

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockAuthorizer is a mock implementation of services.Authorizer
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, userID, storeID string) error {
	args := m.Called(ctx, userID, storeID)
	return args.Error(0)
}

// MockPublisher records published catalog events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListByStore(ctx context.Context, storeID string, filter repositories.ProductFilter) ([]models.Product, error) {
	args := m.Called(ctx, storeID, filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) ([]models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockBillboardRepository is a mock implementation of repositories.BillboardRepository
type MockBillboardRepository struct {
	mock.Mock
}

func (m *MockBillboardRepository) ListByStore(ctx context.Context, storeID string) ([]models.Billboard, error) {
	args := m.Called(ctx, storeID)
	return args.Get(0).([]models.Billboard), args.Error(1)
}

func (m *MockBillboardRepository) FindByID(ctx context.Context, id string) ([]models.Billboard, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]models.Billboard), args.Error(1)
}

func (m *MockBillboardRepository) Create(ctx context.Context, billboard *models.Billboard) error {
	args := m.Called(ctx, billboard)
	return args.Error(0)
}

func (m *MockBillboardRepository) Update(ctx context.Context, billboard *models.Billboard) error {
	args := m.Called(ctx, billboard)
	return args.Error(0)
}

func (m *MockBillboardRepository) Delete(ctx context.Context, storeID, id string) (int64, error) {
	args := m.Called(ctx, storeID, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockStoreRepository is a mock implementation of repositories.StoreRepository
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) Create(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreRepository) ListByUser(ctx context.Context, userID string) ([]models.Store, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreRepository) IsOwnedBy(ctx context.Context, storeID, userID string) (bool, error) {
	args := m.Called(ctx, storeID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStoreRepository) Rename(ctx context.Context, store *models.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *MockStoreRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
