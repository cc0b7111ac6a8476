package repository

import (
	"context"

	"github.com/canso2044/developer-store/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockCartRepository is a testify mock used by the service tests.
type MockCartRepository struct {
	mock.Mock
}

func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{}
}

func (m *MockCartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	args := m.Called(ctx, sessionID)

	if items, ok := args.Get(0).([]models.CartItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	args := m.Called(ctx, sessionID, items)

	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)

	return args.Error(0)
}
