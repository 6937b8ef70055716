package config

import (
	"encoding/json"
	"os"
	"time"

	"pokedex/internal/flagx"
	"pokedex/internal/timex"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// Interval fields use timex.Duration, which accepts both string values such
// as "30m" and integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config.
type JsonConfig struct {
	Address                     string         `json:"address"`
	DatabaseDSN                 string         `json:"database_dsn"`
	DatasetPath                 string         `json:"dataset_path"`
	PublicDir                   string         `json:"public_dir"`
	SecretKey                   string         `json:"secret_key"`
	SessionTTL                  timex.Duration `json:"session_ttl"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	SeedAdminPassword           string         `json:"seed_admin_password"`
	SeedUserPassword            string         `json:"seed_user_password"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named the
// function is a no-op; an unreadable or malformed file panics, since a
// half-applied config is worse than a crash at startup.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.Address = c.Address
	config.DatabaseDSN = c.DatabaseDSN
	config.DatasetPath = c.DatasetPath
	config.PublicDir = c.PublicDir
	config.SecretKey = c.SecretKey
	config.SessionTTL = time.Duration(c.SessionTTL.Duration)
	config.AccessTokenValidityDuration = time.Duration(c.AccessTokenValidityDuration.Duration)
	config.SeedAdminPassword = c.SeedAdminPassword
	config.SeedUserPassword = c.SeedUserPassword
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
