package service

import (
	"context"
	"log"

	"invrecon/internal/domain"
	"invrecon/internal/port"
)

// ReconcileService cross-matches invoices against purchase orders.
type ReconcileService interface {
	Reconcile(ctx context.Context) ([]domain.ReconciliationRow, error)
}

type reconcileService struct {
	invoiceRepo port.InvoiceRepository
	poRepo      port.PurchaseOrderRepository
}

// NewReconcileService creates a new ReconcileService implementation.
func NewReconcileService(invoiceRepo port.InvoiceRepository, poRepo port.PurchaseOrderRepository) ReconcileService {
	return &reconcileService{invoiceRepo: invoiceRepo, poRepo: poRepo}
}

// Reconcile loads both tables in full and pairs each invoice with the first
// purchase order, in insertion order, whose vendor matches exactly and whose
// amount is equal after conversion to float64. Results are recomputed from
// scratch on every call; unmatched purchase orders are not reported.
func (s *reconcileService) Reconcile(ctx context.Context) ([]domain.ReconciliationRow, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pos, err := s.poRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ReconciliationRow, 0, len(invoices))
	for i := range invoices {
		inv := &invoices[i]
		row := domain.ReconciliationRow{
			InvoiceNumber: inv.InvoiceNumber,
			Vendor:        inv.Vendor,
			Amount:        inv.Amount.InexactFloat64(),
			Status:        domain.StatusUnmatched,
		}
		for j := range pos {
			po := &pos[j]
			if po.Vendor == inv.Vendor && po.TotalAmount.InexactFloat64() == inv.Amount.InexactFloat64() {
				row.Status = domain.StatusMatched
				row.PONumber = &po.PONumber
				break
			}
		}
		rows = append(rows, row)
	}

	log.Printf("reconcileService.Reconcile: %d invoices processed against %d purchase orders",
		len(rows), len(pos))
	return rows, nil
}
