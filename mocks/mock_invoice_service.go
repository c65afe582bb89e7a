package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"invrecon/internal/service"
)

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) ProcessUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*service.UploadResult, error) {
	args := m.Called(ctx, file, header)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}
