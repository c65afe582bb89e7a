package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invrecon/internal/domain"
)

// MockPurchaseOrderRepo is a mock implementation of port.PurchaseOrderRepository.
type MockPurchaseOrderRepo struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepo) ListAll(ctx context.Context) ([]domain.PurchaseOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepo) ExistsByPONumber(ctx context.Context, poNumber string) (bool, error) {
	args := m.Called(ctx, poNumber)
	return args.Bool(0), args.Error(1)
}
