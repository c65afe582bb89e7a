package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"invrecon/internal/config"
	"invrecon/internal/domain"
	"invrecon/internal/extract"
	"invrecon/internal/port"
)

// UploadResult is returned to the handler after a successful upload.
type UploadResult struct {
	InvoiceID        int64
	Extracted        domain.ExtractedInvoice
	S3URL            string
	ValidationStatus string
}

// InvoiceService defines the invoice upload contract.
type InvoiceService interface {
	ProcessUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error)
}

type invoiceService struct {
	invoiceRepo port.InvoiceRepository
	storage     port.ObjectStorage
	validator   ValidationService
	cfg         *config.Config
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	storage port.ObjectStorage,
	validator ValidationService,
	cfg *config.Config,
) InvoiceService {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		storage:     storage,
		validator:   validator,
		cfg:         cfg,
	}
}

// ProcessUpload runs the upload pipeline: extract fields, persist a local
// copy, upload to S3, validate the amount, write the invoice row.
// S3 and SOAP failures are non-fatal; extraction, filesystem, and database
// failures abort the request. There is no rollback of earlier side effects.
func (s *invoiceService) ProcessUpload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	filename := header.Filename
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	format, ok := domain.AllowedFormats[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}

	var (
		fields   *domain.ExtractedInvoice
		filePath string
		err      error
	)

	switch format {
	case domain.FormatCSV:
		fields, err = extract.FromCSV(file)
		if err != nil {
			return nil, err
		}
		filePath, err = s.persistCSV(file, fields.InvoiceNumber, filename)
		if err != nil {
			return nil, err
		}

	case domain.FormatPDF:
		// The PDF is written to disk before extraction and renamed once the
		// invoice number is known. Concurrent uploads of the same filename
		// race on these paths; last writer wins.
		tempPath := filepath.Join(s.cfg.Upload.Dir, filename)
		if err = writeMultipart(file, tempPath); err != nil {
			return nil, err
		}
		fields, err = extract.FromPDF(tempPath)
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(s.cfg.Upload.Dir, fields.InvoiceNumber+"_"+filename)
		if err = os.Rename(tempPath, filePath); err != nil {
			return nil, &extract.ExtractionError{Format: "PDF", Err: fmt.Errorf("renaming uploaded file: %w", err)}
		}
	}

	log.Printf("invoiceService.ProcessUpload: saved file %s", filePath)

	objectName := fields.InvoiceNumber + "_" + filename
	s3URL := s.uploadRemote(ctx, filePath, objectName, format)
	validationStatus := s.validator.ValidateAmount(ctx, fields.Amount)

	inv := &domain.Invoice{
		InvoiceNumber:    fields.InvoiceNumber,
		Vendor:           fields.Vendor,
		Amount:           fields.Amount,
		Date:             fields.Date,
		FilePath:         filePath,
		S3URL:            s3URL,
		ValidationStatus: validationStatus,
	}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		// Local copy and remote object are orphaned on this path.
		log.Printf("invoiceService.ProcessUpload: insert failed, orphaning %s (s3: %q): %v",
			filePath, s3URL, err)
		return nil, err
	}

	log.Printf("invoiceService.ProcessUpload: invoice %s saved (id %d, status %q)",
		inv.InvoiceNumber, inv.ID, validationStatus)

	return &UploadResult{
		InvoiceID:        inv.ID,
		Extracted:        *fields,
		S3URL:            s3URL,
		ValidationStatus: validationStatus,
	}, nil
}

// persistCSV rewinds the upload stream and copies it byte-for-byte into the
// upload directory under the extracted invoice number.
func (s *invoiceService) persistCSV(file multipart.File, invoiceNumber, filename string) (string, error) {
	filePath := filepath.Join(s.cfg.Upload.Dir, invoiceNumber+"_"+filename)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding upload stream: %w", err)
	}
	if err := writeMultipart(file, filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

// uploadRemote puts the local file into the configured bucket and returns
// its public URL. Any failure is logged and reported as an empty URL; the
// upload flow continues.
func (s *invoiceService) uploadRemote(ctx context.Context, filePath, objectName string, format domain.InvoiceFormat) string {
	f, err := os.Open(filePath)
	if err != nil {
		log.Printf("invoiceService.uploadRemote: opening %s: %v", filePath, err)
		return ""
	}
	defer func() { _ = f.Close() }()

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.S3.Bucket,
		Key:         objectName,
		Body:        f,
		ContentType: domain.ContentTypes[format],
	})
	if err != nil {
		log.Printf("invoiceService.uploadRemote: upload of %s failed: %v", objectName, err)
		return ""
	}

	url := s.cfg.S3.ObjectURL(objectName)
	log.Printf("invoiceService.uploadRemote: uploaded %s", url)
	return url
}

func writeMultipart(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
