package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"invrecon/internal/domain"
	"invrecon/internal/handler"
	"invrecon/mocks"
)

func TestReconcileHandler_Success(t *testing.T) {
	mockSvc := new(mocks.MockReconcileService)
	h := handler.NewReconcileHandler(mockSvc)

	poNumber := "PO1"
	mockSvc.On("Reconcile", mock.Anything).Return([]domain.ReconciliationRow{
		{InvoiceNumber: "INV1", Vendor: "Acme", Amount: 100.00, Status: domain.StatusMatched, PONumber: &poNumber},
		{InvoiceNumber: "INV2", Vendor: "Acme", Amount: 100.01, Status: domain.StatusUnmatched},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/reconcile", nil)

	h.Reconcile(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reconciliation []map[string]any `json:"reconciliation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reconciliation, 2)

	assert.Equal(t, "Matched", resp.Reconciliation[0]["status"])
	assert.Equal(t, "PO1", resp.Reconciliation[0]["po_number"])

	assert.Equal(t, "Unmatched", resp.Reconciliation[1]["status"])
	// po_number is omitted entirely for unmatched rows.
	_, present := resp.Reconciliation[1]["po_number"]
	assert.False(t, present)
}

func TestReconcileHandler_ServiceError(t *testing.T) {
	mockSvc := new(mocks.MockReconcileService)
	h := handler.NewReconcileHandler(mockSvc)

	mockSvc.On("Reconcile", mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/reconcile", nil)

	h.Reconcile(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
