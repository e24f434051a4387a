package mocks

import (
	"context"

	"github.com/diillson/warehouse-api/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository é um mock de repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*model.UserEntity, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserEntity), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*model.UserEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserEntity), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.UserEntity) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockProductRepository é um mock de repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*model.ProductEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductEntity), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*model.ProductEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductEntity), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.ProductEntity) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// MockClientRepository é um mock de repository.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uint) (*model.ClientEntity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientEntity), args.Error(1)
}

func (m *MockClientRepository) GetAll(ctx context.Context) ([]*model.ClientEntity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ClientEntity), args.Error(1)
}

func (m *MockClientRepository) Create(ctx context.Context, client *model.ClientEntity) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// MockPurchaseRepository é um mock de repository.PurchaseRepository
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) GetByClient(ctx context.Context, clientID uint) ([]*model.PurchaseEntity, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PurchaseEntity), args.Error(1)
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *model.PurchaseEntity) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}
