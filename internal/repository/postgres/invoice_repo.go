package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"invrecon/internal/domain"
	"invrecon/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	inv.CreatedAt = time.Now().UTC()

	query := `INSERT INTO invoices
		(invoice_number, vendor, amount, date, file_path, s3_url, validation_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err := r.db.QueryRowxContext(ctx, query,
		inv.InvoiceNumber, inv.Vendor, inv.Amount, inv.Date,
		inv.FilePath, inv.S3URL, inv.ValidationStatus, inv.CreatedAt,
	).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) ListAll(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListAll: %w", err)
	}
	return invoices, nil
}
