package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"invrecon/internal/domain"
	"invrecon/internal/port"
)

type purchaseOrderRepo struct {
	db *sqlx.DB
}

// NewPurchaseOrderRepo creates a new PostgreSQL-backed PurchaseOrderRepository.
func NewPurchaseOrderRepo(db *sqlx.DB) port.PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) ListAll(ctx context.Context) ([]domain.PurchaseOrder, error) {
	var pos []domain.PurchaseOrder
	err := r.db.SelectContext(ctx, &pos,
		"SELECT * FROM purchase_orders ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("purchaseOrderRepo.ListAll: %w", err)
	}
	return pos, nil
}

func (r *purchaseOrderRepo) ExistsByPONumber(ctx context.Context, poNumber string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		"SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE po_number = $1)", poNumber)
	if err != nil {
		return false, fmt.Errorf("purchaseOrderRepo.ExistsByPONumber: %w", err)
	}
	return exists, nil
}
