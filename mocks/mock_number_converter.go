package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNumberConverter is a mock implementation of port.NumberConverter.
type MockNumberConverter struct {
	mock.Mock
}

func (m *MockNumberConverter) NumberToWords(ctx context.Context, n int64) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}
