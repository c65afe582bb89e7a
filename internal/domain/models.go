package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents one uploaded and processed invoice.
// Invoice numbers are not unique; every successful upload writes a new row.
type Invoice struct {
	ID               int64           `db:"id" json:"id"`
	InvoiceNumber    string          `db:"invoice_number" json:"invoice_number"`
	Vendor           string          `db:"vendor" json:"vendor"`
	Amount           decimal.Decimal `db:"amount" json:"amount"`
	Date             time.Time       `db:"date" json:"date"`
	FilePath         string          `db:"file_path" json:"file_path"`
	S3URL            string          `db:"s3_url" json:"s3_url"`
	ValidationStatus string          `db:"validation_status" json:"validation_status"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// PurchaseOrder represents a seeded purchase order. PO numbers are unique;
// rows are written once by the seed loader and never updated.
type PurchaseOrder struct {
	ID          int64           `db:"id" json:"id"`
	PONumber    string          `db:"po_number" json:"po_number"`
	Vendor      string          `db:"vendor" json:"vendor"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
	Date        time.Time       `db:"date" json:"date"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// ExtractedInvoice holds the structured fields pulled out of an uploaded file.
type ExtractedInvoice struct {
	InvoiceNumber string
	Vendor        string
	Amount        decimal.Decimal
	Date          time.Time
}

// ReconciliationRow is one invoice's reconciliation outcome.
// PONumber is omitted from the JSON body when the invoice is unmatched.
type ReconciliationRow struct {
	InvoiceNumber string      `json:"invoice_number"`
	Vendor        string      `json:"vendor"`
	Amount        float64     `json:"amount"`
	Status        MatchStatus `json:"status"`
	PONumber      *string     `json:"po_number,omitempty"`
}
