package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised by parseEnv.
//
// Durations use time.ParseDuration syntax ("90s", "2h"), booleans use
// strconv.ParseBool. Empty string values are treated as unset.
const (
	EnvHTTPAddr       = "RECIPES_HTTP_ADDR"
	EnvGRPCHealthAddr = "RECIPES_GRPC_HEALTH_ADDR"
	EnvStorageKind    = "RECIPES_STORAGE"
	EnvDatabaseDSN    = "RECIPES_DATABASE_DSN"
	EnvSecretKey      = "RECIPES_SECRET_KEY"
	EnvTokenTTL       = "RECIPES_ACCESS_TOKEN_TTL"
	EnvSeedSampleData = "RECIPES_SEED_SAMPLE_DATA"
	EnvLogLevel       = "RECIPES_LOG_LEVEL"
	EnvS3AccessKey    = "RECIPES_S3_ACCESS_KEY"
	EnvS3SecretKey    = "RECIPES_S3_SECRET_KEY"
	EnvS3Bucket       = "RECIPES_S3_BUCKET"
	EnvS3Region       = "RECIPES_S3_REGION"
	EnvS3BaseEndpoint = "RECIPES_S3_BASE_ENDPOINT"
)

// dotenvFile is loaded (if present) before reading the environment.
var dotenvFile = ".env"

// parseEnv overlays environment variables onto the provided Config.
//
// It first loads dotenvFile into the process environment with godotenv.
// Variables already present in the environment win over the file, and a
// missing file is not an error.
//
// Every RECIPES_* variable that is set then replaces the matching field.
// Malformed duration or boolean values are logged and ignored, leaving the
// previous value in place.
func parseEnv(config *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load %s: %v", dotenvFile, err)
	}

	envString(&config.HTTPAddr, EnvHTTPAddr)
	envString(&config.GRPCHealthAddr, EnvGRPCHealthAddr)
	envString(&config.StorageKind, EnvStorageKind)
	envString(&config.DatabaseDSN, EnvDatabaseDSN)
	envString(&config.SecretKey, EnvSecretKey)
	envString(&config.LogLevel, EnvLogLevel)
	envString(&config.S3AccessKey, EnvS3AccessKey)
	envString(&config.S3SecretKey, EnvS3SecretKey)
	envString(&config.S3Bucket, EnvS3Bucket)
	envString(&config.S3Region, EnvS3Region)
	envString(&config.S3BaseEndpoint, EnvS3BaseEndpoint)

	if v, ok := os.LookupEnv(EnvTokenTTL); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("warning: ignoring %s=%q: %v", EnvTokenTTL, v, err)
		} else {
			config.AccessTokenValidityDuration = d
		}
	}

	if v, ok := os.LookupEnv(EnvSeedSampleData); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("warning: ignoring %s=%q: %v", EnvSeedSampleData, v, err)
		} else {
			config.SeedSampleData = b
		}
	}
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
