package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"invrecon/internal/service"
	"invrecon/mocks"
)

func TestValidationService_TruncatesBeforeConverting(t *testing.T) {
	converter := new(mocks.MockNumberConverter)
	svc := service.NewValidationService(converter)

	converter.On("NumberToWords", mock.Anything, int64(1234)).
		Return("One Thousand Two Hundred And Thirty Four ", nil)

	status := svc.ValidateAmount(context.Background(), decimal.RequireFromString("1234.00"))

	assert.Equal(t, "Valid: One Thousand Two Hundred And Thirty Four", status)
	converter.AssertExpectations(t)
}

func TestValidationService_FractionIsDropped(t *testing.T) {
	converter := new(mocks.MockNumberConverter)
	svc := service.NewValidationService(converter)

	converter.On("NumberToWords", mock.Anything, int64(99)).Return("Ninety Nine", nil)

	status := svc.ValidateAmount(context.Background(), decimal.RequireFromString("99.99"))

	assert.Equal(t, "Valid: Ninety Nine", status)
	converter.AssertExpectations(t)
}

func TestValidationService_RemoteFailure(t *testing.T) {
	converter := new(mocks.MockNumberConverter)
	svc := service.NewValidationService(converter)

	converter.On("NumberToWords", mock.Anything, int64(1234)).
		Return("", errors.New("dial tcp: connection refused"))

	status := svc.ValidateAmount(context.Background(), decimal.RequireFromString("1234.00"))

	assert.Equal(t, "Validation failed", status)
}
