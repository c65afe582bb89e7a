// Command seedpos loads purchase orders from a CSV file into the database.
// Rows whose po_number already exists are skipped; all new rows are
// committed in a single transaction.
// Usage: go run ./cmd/seedpos
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"invrecon/internal/config"
	"invrecon/internal/repository/postgres"
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

	f, err := os.Open(cfg.Seed.POFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("CSV file not found; make sure %q exists", cfg.Seed.POFile)
		}
		return fmt.Errorf("open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	count, err := seed(db, f)
	if err != nil {
		return err
	}

	log.Printf("Loaded %d purchase orders into the database", count)
	return nil
}

// seed reads the purchase order CSV and inserts every row whose po_number
// is not already present. All inserts happen in one transaction.
func seed(db *sqlx.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read CSV header: %w", err)
	}
	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}
	for _, col := range []string{"po_number", "vendor", "total_amount", "date"} {
		if _, ok := colIndex[col]; !ok {
			return 0, fmt.Errorf("seed CSV missing column %q", col)
		}
	}

	tx, err := db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	count := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read CSV row: %w", err)
		}

		poNumber := strings.TrimSpace(row[colIndex["po_number"]])

		var exists bool
		if err := tx.Get(&exists,
			"SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE po_number = $1)", poNumber); err != nil {
			return 0, fmt.Errorf("check po_number %s: %w", poNumber, err)
		}
		if exists {
			log.Printf("PO %s already exists. Skipping.", poNumber)
			continue
		}

		totalAmount, err := decimal.NewFromString(strings.TrimSpace(row[colIndex["total_amount"]]))
		if err != nil {
			return 0, fmt.Errorf("parse total_amount for PO %s: %w", poNumber, err)
		}
		date, err := time.Parse("2006-01-02", strings.TrimSpace(row[colIndex["date"]]))
		if err != nil {
			return 0, fmt.Errorf("parse date for PO %s: %w", poNumber, err)
		}

		_, err = tx.Exec(
			`INSERT INTO purchase_orders (po_number, vendor, total_amount, date, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			poNumber, strings.TrimSpace(row[colIndex["vendor"]]), totalAmount, date, time.Now().UTC())
		if err != nil {
			return 0, fmt.Errorf("insert PO %s: %w", poNumber, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return count, nil
}
