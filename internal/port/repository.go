package port

import (
	"context"

	"invrecon/internal/domain"
)

// InvoiceRepository persists invoices and reads them back for reconciliation.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	ListAll(ctx context.Context) ([]domain.Invoice, error)
}

// PurchaseOrderRepository reads seeded purchase orders.
// ListAll returns rows in insertion order; reconciliation depends on it.
type PurchaseOrderRepository interface {
	ListAll(ctx context.Context) ([]domain.PurchaseOrder, error)
	ExistsByPONumber(ctx context.Context, poNumber string) (bool, error)
}
