package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invrecon/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, "invrecon-uploads", cfg.S3.Bucket)
	assert.Equal(t, "http://www.dataaccess.com/webservicesserver/NumberConversion.wso?WSDL", cfg.SOAP.WSDL)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, "dummy_data/dummy_po.csv", cfg.Seed.POFile)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("INVRECON_DB_HOST", "db.internal")
	t.Setenv("INVRECON_DB_PORT", "5433")
	t.Setenv("INVRECON_S3_BUCKET", "prod-invoices")
	t.Setenv("INVRECON_UPLOAD_DIR", "/var/lib/invrecon/uploads")
	t.Setenv("INVRECON_CORS_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "prod-invoices", cfg.S3.Bucket)
	assert.Equal(t, "/var/lib/invrecon/uploads", cfg.Upload.Dir)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestDSN(t *testing.T) {
	d := config.DBConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "db", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@localhost:5432/db?sslmode=disable", d.DSN())
}

func TestObjectURL(t *testing.T) {
	s := config.S3Config{Region: "us-east-1", Bucket: "invrecon-uploads"}
	assert.Equal(t,
		"https://invrecon-uploads.s3.us-east-1.amazonaws.com/INV1_invoice.csv",
		s.ObjectURL("INV1_invoice.csv"))
}

func TestLoad_PortEnvFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}
