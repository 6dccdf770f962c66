package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables. Empty or
// malformed values leave the current value in place.
//
// Recognized variables:
//
//	ADDRESS          HTTP bind address (e.g., ":5000")
//	DATABASE_URL     PostgreSQL DSN
//	JWT_SECRET       token signing secret
//	TOKEN_VALIDITY   token lifetime (Go duration, e.g., "720h")
//	REDIS_URL        redis endpoint for the login limiter
//	ALLOWED_ORIGINS  comma-separated CORS origins
//	S3_ROOT_USER / S3_ROOT_PASSWORD / S3_BUCKET / S3_REGION / S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	setString := func(name string, dst *string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}

	setString("ADDRESS", &config.HTTPAddr)
	setString("DATABASE_URL", &config.DatabaseDSN)
	setString("JWT_SECRET", &config.JWTSecret)
	setString("REDIS_URL", &config.RedisURL)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)

	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			config.TokenValidity = d
		}
	}

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if t := strings.TrimSpace(o); t != "" {
				origins = append(origins, t)
			}
		}
		if len(origins) > 0 {
			config.AllowedOrigins = origins
		}
	}
}
