// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/canso2044/developer-store/internal/models"
	service "github.com/canso2044/developer-store/internal/services"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, req)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, sessionID, lineID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, lineID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (*models.Cart, error) {
	args := m.Called(ctx, sessionID, lineID, quantity)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) ClearCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	args := m.Called(ctx, sessionID)

	if cart, ok := args.Get(0).(*models.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartService) GetItemQuantity(ctx context.Context, sessionID, productID, variantID string) (int, error) {
	args := m.Called(ctx, sessionID, productID, variantID)

	return args.Int(0), args.Error(1)
}

func (m *CartService) OnCartChanged(listener service.CartChangedListener) {
	m.Called(listener)
}

type CheckoutService struct {
	mock.Mock
}

func (m *CheckoutService) SubmitOrder(ctx context.Context, order *models.OrderSubmission) *models.OrderResult {
	args := m.Called(ctx, order)

	return args.Get(0).(*models.OrderResult)
}

func (m *CheckoutService) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusInfo, error) {
	args := m.Called(ctx, orderID)

	if status, ok := args.Get(0).(*models.OrderStatusInfo); ok {
		return status, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CheckoutService) ProcessPayment(ctx context.Context, payment *models.PaymentData) *models.OrderResult {
	args := m.Called(ctx, payment)

	return args.Get(0).(*models.OrderResult)
}

type OrderGateway struct {
	mock.Mock
}

func (m *OrderGateway) SubmitOrder(ctx context.Context, order *models.OrderSubmission) (*models.OrderResult, error) {
	args := m.Called(ctx, order)

	if result, ok := args.Get(0).(*models.OrderResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderGateway) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusInfo, error) {
	args := m.Called(ctx, orderID)

	if status, ok := args.Get(0).(*models.OrderStatusInfo); ok {
		return status, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderGateway) ProcessCreditCard(ctx context.Context, payment *models.PaymentData) (*models.OrderResult, error) {
	args := m.Called(ctx, payment)

	if result, ok := args.Get(0).(*models.OrderResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}
