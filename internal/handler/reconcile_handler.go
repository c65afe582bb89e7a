package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invrecon/internal/domain"
	"invrecon/internal/service"
)

// ReconcileHandler handles the reconciliation endpoint.
type ReconcileHandler struct {
	reconcileService service.ReconcileService
}

// NewReconcileHandler creates a new ReconcileHandler.
func NewReconcileHandler(reconcileService service.ReconcileService) *ReconcileHandler {
	return &ReconcileHandler{reconcileService: reconcileService}
}

// ReconcileResponse wraps the reconciliation result rows.
type ReconcileResponse struct {
	Reconciliation []domain.ReconciliationRow `json:"reconciliation"`
}

// Reconcile handles GET /reconcile
// @Summary Reconcile invoices against purchase orders
// @Description Match every invoice to the first purchase order with the same vendor and amount
// @Tags reconciliation
// @Produce json
// @Success 200 {object} ReconcileResponse "Reconciliation results"
// @Failure 500 {object} ErrorResponse "Database failure"
// @Router /reconcile [get]
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	rows, err := h.reconcileService.Reconcile(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReconcileResponse{Reconciliation: rows})
}
