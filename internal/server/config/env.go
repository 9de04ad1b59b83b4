package config

import (
	"os"
	"time"
)

// parseEnv overlays configuration from environment variables. JWT_SECRET is
// the variable deployments are expected to set; the rest mirror the flags.
func parseEnv(config *Config) {
	setFromEnv(&config.EndpointAddr, "ADDRESS")
	setFromEnv(&config.DatabaseDSN, "DATABASE_DSN")
	setFromEnv(&config.SecretKey, "JWT_SECRET")
	setFromEnv(&config.Environment, "APP_ENV")
	setFromEnv(&config.CORSOrigin, "CORS_ORIGIN")
	setFromEnv(&config.Storage, "STORAGE")
	setFromEnv(&config.UploadDir, "UPLOAD_DIR")
	setFromEnv(&config.S3RootUser, "S3_ROOT_USER")
	setFromEnv(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	setFromEnv(&config.S3Bucket, "S3_BUCKET")
	setFromEnv(&config.S3Region, "S3_REGION")
	setFromEnv(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")

	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}

func setFromEnv(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok {
		*dst = v
	}
}
