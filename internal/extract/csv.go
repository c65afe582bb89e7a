// Package extract derives structured invoice fields from uploaded CSV and
// PDF files.
package extract

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"invrecon/internal/domain"
)

const dateLayout = "2006-01-02"

// requiredColumns are the header columns a CSV invoice must carry.
var requiredColumns = []string{"invoice_number", "vendor", "amount", "date"}

// FromCSV parses a header-delimited CSV invoice. Only the first data row is
// read; CSV uploads are single-invoice files and any further rows are ignored.
func FromCSV(r io.Reader) (*domain.ExtractedInvoice, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, csvError(fmt.Errorf("reading header: %w", err))
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, csvError(fmt.Errorf("missing column %q", col))
		}
	}

	row, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, csvError(errors.New("no data rows"))
		}
		return nil, csvError(fmt.Errorf("reading first data row: %w", err))
	}

	field := func(name string) string {
		i := colIndex[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil {
		return nil, csvError(fmt.Errorf("parsing amount %q: %w", field("amount"), err))
	}
	date, err := time.Parse(dateLayout, field("date"))
	if err != nil {
		return nil, csvError(fmt.Errorf("parsing date %q: %w", field("date"), err))
	}

	return &domain.ExtractedInvoice{
		InvoiceNumber: field("invoice_number"),
		Vendor:        field("vendor"),
		Amount:        amount,
		Date:          date,
	}, nil
}
