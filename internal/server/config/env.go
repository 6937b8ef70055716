package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset
// variables leave the current value untouched; malformed durations are
// ignored rather than guessed at.
//
// Recognized variables:
//
//	ADDRESS               HTTP bind address
//	DATABASE_DSN          PostgreSQL DSN
//	DATASET_PATH          path to the Pokémon JSON source
//	PUBLIC_DIR            static assets directory
//	SECRET_KEY            HMAC secret for API tokens
//	SESSION_TTL           browser session lifetime ("24h")
//	ACCESS_TOKEN_TTL      API token lifetime ("15m")
//	SEED_ADMIN_PASSWORD   bootstrap admin account password
//	SEED_USER_PASSWORD    bootstrap user account password
//	S3_ROOT_USER, S3_ROOT_PASSWORD, S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT
func parseEnv(config *Config) {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		if v, ok := os.LookupEnv(key); ok {
			if d, err := time.ParseDuration(v); err == nil {
				*dst = d
			}
		}
	}

	setString("ADDRESS", &config.Address)
	setString("DATABASE_DSN", &config.DatabaseDSN)
	setString("DATASET_PATH", &config.DatasetPath)
	setString("PUBLIC_DIR", &config.PublicDir)
	setString("SECRET_KEY", &config.SecretKey)
	setDuration("SESSION_TTL", &config.SessionTTL)
	setDuration("ACCESS_TOKEN_TTL", &config.AccessTokenValidityDuration)
	setString("SEED_ADMIN_PASSWORD", &config.SeedAdminPassword)
	setString("SEED_USER_PASSWORD", &config.SeedUserPassword)
	setString("S3_ROOT_USER", &config.S3RootUser)
	setString("S3_ROOT_PASSWORD", &config.S3RootPassword)
	setString("S3_BUCKET", &config.S3Bucket)
	setString("S3_REGION", &config.S3Region)
	setString("S3_BASE_ENDPOINT", &config.S3BaseEndpoint)
}
