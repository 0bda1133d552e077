package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/recipeshare/internal/flagx"
	"github.com/dmitrijs2005/recipeshare/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file.
//
// It uses timex.Duration for the validity fields, which accepts both
// "15m"-style strings and integer nanoseconds. SeedSampleData is a pointer
// so that an explicit false can be told apart from an absent key.
//
// This struct is an intermediate DTO used only while reading the file.
// Its fields are copied into the runtime Config, and absent or empty fields
// leave the current value untouched.
type JsonConfig struct {
	HTTPAddr                    string         `json:"http_addr"`
	GRPCHealthAddr              string         `json:"grpc_health_addr"`
	StorageKind                 string         `json:"storage_kind"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	SeedSampleData              *bool          `json:"seed_sample_data"`
	LogLevel                    string         `json:"log_level"`
	S3AccessKey                 string         `json:"s3_access_key"`
	S3SecretKey                 string         `json:"s3_secret_key"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	ImageUploadURLValidity      timex.Duration `json:"image_upload_url_validity"`
}

// parseJson overlays values from a JSON file onto the provided Config.
//
// The lookup order for the file path is:
//
//	The -c or -config command-line flags.
//	The RECIPES_CONFIG environment variable.
//	If neither is set, no JSON file is loaded.
//
// Only non-empty strings, positive durations and present booleans are
// copied, so the file may set any subset of fields. An unreadable file or
// invalid JSON panics.
//
// The caller merges these values with defaults, the environment and
// command-line flags as part of LoadConfig.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCHealthAddr, c.GRPCHealthAddr)
	setString(&config.StorageKind, c.StorageKind)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.ImageUploadURLValidity.Duration > 0 {
		config.ImageUploadURLValidity = c.ImageUploadURLValidity.Duration
	}
	if c.SeedSampleData != nil {
		config.SeedSampleData = *c.SeedSampleData
	}
}

// setString assigns v to dst unless v is empty.
func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
