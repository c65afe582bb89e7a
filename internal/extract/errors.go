package extract

import "fmt"

// ExtractionError indicates an uploaded file could not be parsed into
// invoice fields. It is client-caused and maps to HTTP 400.
type ExtractionError struct {
	Format string // "CSV" or "PDF"
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s extraction error: %v", e.Format, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func csvError(err error) *ExtractionError {
	return &ExtractionError{Format: "CSV", Err: err}
}

func pdfError(err error) *ExtractionError {
	return &ExtractionError{Format: "PDF", Err: err}
}
