package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"invrecon/internal/domain"
	"invrecon/internal/service"
)

// InvoiceHandler handles the invoice upload endpoint.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// ExtractedPayload echoes the fields pulled out of the uploaded file.
type ExtractedPayload struct {
	InvoiceNumber string  `json:"invoice_number"`
	Vendor        string  `json:"vendor"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
}

// UploadResponse is the body returned for a successful upload.
type UploadResponse struct {
	Message          string           `json:"message"`
	InvoiceID        int64            `json:"invoice_id"`
	Extracted        ExtractedPayload `json:"extracted"`
	S3URL            string           `json:"s3_url"`
	ValidationStatus string           `json:"validation_status"`
}

// Upload handles POST /upload-invoice
// @Summary Upload an invoice file
// @Description Upload an invoice (CSV or PDF), extract its fields, validate the amount via SOAP, store the file on S3, and persist the record
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice file (CSV or PDF)"
// @Success 200 {object} UploadResponse "Invoice uploaded and processed"
// @Failure 400 {object} ErrorResponse "Extraction failed"
// @Failure 415 {object} ErrorResponse "Unsupported file format"
// @Failure 500 {object} ErrorResponse "Storage or database failure"
// @Router /upload-invoice [post]
func (h *InvoiceHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.invoiceService.ProcessUpload(c.Request.Context(), file, header)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Message:   "Invoice uploaded and processed automatically",
		InvoiceID: result.InvoiceID,
		Extracted: ExtractedPayload{
			InvoiceNumber: result.Extracted.InvoiceNumber,
			Vendor:        result.Extracted.Vendor,
			Amount:        result.Extracted.Amount.InexactFloat64(),
			Date:          result.Extracted.Date.Format("2006-01-02"),
		},
		S3URL:            result.S3URL,
		ValidationStatus: result.ValidationStatus,
	})
}
