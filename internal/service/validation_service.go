package service

import (
	"context"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	"invrecon/internal/domain"
	"invrecon/internal/port"
)

// ValidationService validates an invoice amount through the remote
// numeral-to-words service.
type ValidationService interface {
	// ValidateAmount returns a human-readable validation tag. It never
	// fails: remote errors are swallowed and recorded as the fixed
	// failure tag.
	ValidateAmount(ctx context.Context, amount decimal.Decimal) string
}

type validationService struct {
	converter port.NumberConverter
}

// NewValidationService creates a new ValidationService implementation.
func NewValidationService(converter port.NumberConverter) ValidationService {
	return &validationService{converter: converter}
}

func (s *validationService) ValidateAmount(ctx context.Context, amount decimal.Decimal) string {
	// The remote service takes integers; the amount is truncated, not rounded.
	words, err := s.converter.NumberToWords(ctx, amount.IntPart())
	if err != nil {
		log.Printf("validationService.ValidateAmount: soap call failed: %v", err)
		return domain.ValidationFailed
	}
	return "Valid: " + strings.TrimSpace(words)
}
