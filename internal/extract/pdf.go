package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"

	"invrecon/internal/domain"
)

// The labels are matched verbatim, case sensitive, with an optional colon or
// dash separator. Documents whose layout drops any label fail extraction.
var (
	invoiceNumberPattern = regexp.MustCompile(`Invoice Number[:\-]?\s*(\w+)`)
	vendorPattern        = regexp.MustCompile(`Vendor[:\-]?\s*(.+)`)
	amountPattern        = regexp.MustCompile(`Amount[:\-]?\s*([\d.]+)`)
	datePattern          = regexp.MustCompile(`Date[:\-]?\s*(\d{4}-\d{2}-\d{2})`)
)

// FromPDF renders every page of the PDF at path to plain text, concatenates
// the pages, and extracts the four labeled invoice fields.
func FromPDF(path string) (*domain.ExtractedInvoice, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, pdfError(fmt.Errorf("opening pdf: %w", err))
	}
	defer func() { _ = f.Close() }()

	var text strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, pdfError(fmt.Errorf("reading page %d: %w", i, err))
		}
		text.WriteString(pageText)
	}

	return parseFields(text.String())
}

// parseFields applies the four independent label patterns to the
// concatenated document text.
func parseFields(text string) (*domain.ExtractedInvoice, error) {
	invoiceNumber := firstGroup(invoiceNumberPattern, text)
	vendor := firstGroup(vendorPattern, text)
	amountStr := firstGroup(amountPattern, text)
	dateStr := firstGroup(datePattern, text)

	if invoiceNumber == "" || vendor == "" || amountStr == "" || dateStr == "" {
		return nil, pdfError(errors.New("missing fields in PDF"))
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, pdfError(fmt.Errorf("parsing amount %q: %w", amountStr, err))
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return nil, pdfError(fmt.Errorf("parsing date %q: %w", dateStr, err))
	}

	return &domain.ExtractedInvoice{
		InvoiceNumber: invoiceNumber,
		Vendor:        vendor,
		Amount:        amount,
		Date:          date,
	}, nil
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
