package main

import (
	"fmt"
	"log"
	"os"

	"invrecon/internal/config"
	"invrecon/internal/handler"
	"invrecon/internal/repository/postgres"
	"invrecon/internal/router"
	"invrecon/internal/service"
	"invrecon/internal/soap"
	s3storage "invrecon/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	poRepo := postgres.NewPurchaseOrderRepo(db)

	// Initialize collaborators
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	numConv, err := soap.NewNumberConversionClient(&cfg.SOAP)
	if err != nil {
		return fmt.Errorf("failed to initialize SOAP client: %w", err)
	}

	// Initialize services
	validationSvc := service.NewValidationService(numConv)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, s3Client, validationSvc, cfg)
	reconcileSvc := service.NewReconcileService(invoiceRepo, poRepo)

	// Initialize handlers
	invoiceH := handler.NewInvoiceHandler(invoiceSvc)
	reconcileH := handler.NewReconcileHandler(reconcileSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, invoiceH, reconcileH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
