package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"invrecon/internal/domain"
)

// MockReconcileService is a mock implementation of service.ReconcileService.
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) Reconcile(ctx context.Context) ([]domain.ReconciliationRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReconciliationRow), args.Error(1)
}
