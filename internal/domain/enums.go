package domain

// InvoiceFormat represents the accepted upload file formats.
type InvoiceFormat string

const (
	FormatCSV InvoiceFormat = "csv"
	FormatPDF InvoiceFormat = "pdf"
)

// AllowedFormats maps file extensions (without dot) to InvoiceFormat.
var AllowedFormats = map[string]InvoiceFormat{
	"csv": FormatCSV,
	"pdf": FormatPDF,
}

// ContentTypes maps InvoiceFormat to the MIME type used for the S3 upload.
var ContentTypes = map[InvoiceFormat]string{
	FormatCSV: "text/csv",
	FormatPDF: "application/pdf",
}

// MatchStatus is the reconciliation outcome for a single invoice.
type MatchStatus string

const (
	StatusMatched   MatchStatus = "Matched"
	StatusUnmatched MatchStatus = "Unmatched"
)

// ValidationFailed is the fixed tag stored when the remote amount
// validation call fails for any reason.
const ValidationFailed = "Validation failed"
