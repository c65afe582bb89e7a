package port

import "context"

// NumberConverter abstracts the remote numeral-to-words SOAP service.
type NumberConverter interface {
	NumberToWords(ctx context.Context, n int64) (string, error)
}
