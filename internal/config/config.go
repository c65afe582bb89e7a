package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	SOAP   SOAPConfig
	Upload UploadConfig
	Seed   SeedConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// ObjectURL returns the public URL an object is reachable at after upload.
func (s *S3Config) ObjectURL(objectName string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.Bucket, s.Region, objectName)
}

// SOAPConfig holds settings for the NumberConversion SOAP service.
type SOAPConfig struct {
	WSDL    string        `mapstructure:"wsdl"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// UploadConfig holds local upload directory settings.
type UploadConfig struct {
	Dir string `mapstructure:"dir"`
}

// SeedConfig holds the purchase order seed loader settings.
type SeedConfig struct {
	POFile string `mapstructure:"po_file"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the INVRECON_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVRECON")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "invrecon")
	v.SetDefault("db.password", "invrecon_secret")
	v.SetDefault("db.name", "invrecon_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "invrecon-uploads")
	v.SetDefault("s3.endpoint", "")

	// SOAP defaults
	v.SetDefault("soap.wsdl", "http://www.dataaccess.com/webservicesserver/NumberConversion.wso?WSDL")
	v.SetDefault("soap.timeout", "30s")

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")

	// Seed defaults
	v.SetDefault("seed.po_file", "dummy_data/dummy_po.csv")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:8000,http://127.0.0.1:8000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "INVRECON_SERVER_PORT",
		"server.read_timeout":  "INVRECON_SERVER_READ_TIMEOUT",
		"server.write_timeout": "INVRECON_SERVER_WRITE_TIMEOUT",
		"server.environment":   "INVRECON_SERVER_ENVIRONMENT",
		"db.host":              "INVRECON_DB_HOST",
		"db.port":              "INVRECON_DB_PORT",
		"db.user":              "INVRECON_DB_USER",
		"db.password":          "INVRECON_DB_PASSWORD",
		"db.name":              "INVRECON_DB_NAME",
		"db.sslmode":           "INVRECON_DB_SSLMODE",
		"db.max_open":          "INVRECON_DB_MAX_OPEN",
		"db.max_idle":          "INVRECON_DB_MAX_IDLE",
		"s3.region":            "INVRECON_S3_REGION",
		"s3.bucket":            "INVRECON_S3_BUCKET",
		"s3.endpoint":          "INVRECON_S3_ENDPOINT",
		"s3.access_key":        "INVRECON_S3_ACCESS_KEY",
		"s3.secret_key":        "INVRECON_S3_SECRET_KEY",
		"soap.wsdl":            "INVRECON_SOAP_WSDL",
		"soap.timeout":         "INVRECON_SOAP_TIMEOUT",
		"upload.dir":           "INVRECON_UPLOAD_DIR",
		"seed.po_file":         "INVRECON_SEED_PO_FILE",
		"cors.allowed_origins": "INVRECON_CORS_ALLOWED_ORIGINS",
		"log.level":            "INVRECON_LOG_LEVEL",
		"log.format":           "INVRECON_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVRECON_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVRECON_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.SOAP = SOAPConfig{
		WSDL:    v.GetString("soap.wsdl"),
		Timeout: v.GetDuration("soap.timeout"),
	}
	cfg.Upload = UploadConfig{
		Dir: v.GetString("upload.dir"),
	}
	cfg.Seed = SeedConfig{
		POFile: v.GetString("seed.po_file"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
