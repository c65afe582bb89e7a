package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pdfText(fields map[string]string) string {
	text := ""
	for _, label := range []string{"Invoice Number", "Amount", "Date", "Vendor"} {
		if v, ok := fields[label]; ok {
			text += label + ": " + v + "\n"
		}
	}
	return text
}

func allFields() map[string]string {
	return map[string]string{
		"Invoice Number": "INV100",
		"Vendor":         "Acme Corporation",
		"Amount":         "1500.00",
		"Date":           "2024-03-01",
	}
}

func TestParseFields_AllLabelsPresent(t *testing.T) {
	fields, err := parseFields(pdfText(allFields()))
	require.NoError(t, err)

	assert.Equal(t, "INV100", fields.InvoiceNumber)
	assert.Equal(t, "Acme Corporation", fields.Vendor)
	assert.True(t, fields.Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, "2024-03-01", fields.Date.Format("2006-01-02"))
}

func TestParseFields_MissingAnyLabelFails(t *testing.T) {
	for _, label := range []string{"Invoice Number", "Vendor", "Amount", "Date"} {
		t.Run(label, func(t *testing.T) {
			fields := allFields()
			delete(fields, label)

			_, err := parseFields(pdfText(fields))
			var extractionErr *ExtractionError
			require.ErrorAs(t, err, &extractionErr)
			assert.Equal(t, "PDF", extractionErr.Format)
			assert.Contains(t, err.Error(), "missing fields in PDF")
		})
	}
}

func TestParseFields_LabelsAreCaseSensitive(t *testing.T) {
	_, err := parseFields("invoice number: INV1\nvendor: A\namount: 1\ndate: 2024-01-01\n")
	require.Error(t, err)
}

func TestParseFields_SeparatorVariants(t *testing.T) {
	text := "Invoice Number- INV9\nVendor Acme\nAmount 42.50\nDate 2024-06-30\n"

	fields, err := parseFields(text)
	require.NoError(t, err)
	assert.Equal(t, "INV9", fields.InvoiceNumber)
	assert.Equal(t, "Acme", fields.Vendor)
	assert.True(t, fields.Amount.Equal(decimal.RequireFromString("42.50")))
}

func TestParseFields_BadDateFormat(t *testing.T) {
	text := "Invoice Number: INV1\nVendor: A\nAmount: 10.00\nDate: 01-03-2024\n"

	// The date pattern requires YYYY-MM-DD, so no date is found at all.
	_, err := parseFields(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing fields in PDF")
}

func TestFromPDF_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	// Trailing spaces keep fields separated even if text runs are
	// concatenated without line breaks during extraction. Vendor goes
	// last because its pattern captures to the end of the line.
	doc.Cell(0, 10, "Invoice Number: INV100 ")
	doc.Ln(10)
	doc.Cell(0, 10, "Amount: 1500.00 ")
	doc.Ln(10)
	doc.Cell(0, 10, "Date: 2024-03-01 ")
	doc.Ln(10)
	doc.Cell(0, 10, "Vendor: Acme Corporation")
	require.NoError(t, doc.OutputFileAndClose(path))

	fields, err := FromPDF(path)
	require.NoError(t, err)

	assert.Equal(t, "INV100", fields.InvoiceNumber)
	assert.Equal(t, "Acme Corporation", fields.Vendor)
	assert.True(t, fields.Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, "2024-03-01", fields.Date.Format("2006-01-02"))
}

func TestFromPDF_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0o644))

	_, err := FromPDF(path)
	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, "PDF", extractionErr.Format)
}
