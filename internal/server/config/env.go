package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. Values are
// typically supplied via the process environment or a .env file loaded by
// the entrypoint before LoadConfig runs.
//
// Recognized variables:
//
//	ADDRESS           HTTP bind address (e.g. ":3000")
//	DATABASE_DSN      PostgreSQL DSN
//	JWT_SECRET        HMAC signing secret (required for startup)
//	TOKEN_VALIDITY    token lifetime (time.ParseDuration form, e.g. "24h")
//	IMAGE_UPLOAD_DIR  directory for uploaded files
//	MAX_UPLOAD_BYTES  declared-size cap for one upload
//	STATIC_DIR        built web UI directory (optional)
//	STORAGE_BACKEND   "disk" or "s3"
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("IMAGE_UPLOAD_DIR"); ok {
		config.UploadDir = v
	}
	if v, ok := os.LookupEnv("MAX_UPLOAD_BYTES"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			config.MaxUploadBytes = n
		}
	}
	if v, ok := os.LookupEnv("STATIC_DIR"); ok {
		config.StaticDir = v
	}
	if v, ok := os.LookupEnv("STORAGE_BACKEND"); ok {
		config.StorageBackend = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_USER"); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_PASSWORD"); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
}
