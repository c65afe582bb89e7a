package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"invrecon/internal/domain"
	"invrecon/internal/extract"
)

// ErrorResponse carries a free-text detail message alongside the HTTP status.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// RespondDetail sends an error response with the given status code.
func RespondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorResponse{Detail: detail})
}

// MapError translates service errors to an HTTP status and detail message.
// Extraction failures are client-caused (400), unsupported formats map to
// 415, everything else is a server-side storage failure (500).
func MapError(err error) (status int, detail string) {
	var extractionErr *extract.ExtractionError
	switch {
	case errors.As(err, &extractionErr):
		return http.StatusBadRequest, extractionErr.Error()
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType, "Unsupported file format. Please upload a CSV or PDF."
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "file field is required"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleError maps an error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, detail := MapError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondDetail(c, status, detail)
}
