package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recipeshare/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-g string   gRPC health bind address
//	-s string   storage kind: memory | postgres
//	-d string   PostgreSQL DSN
//	-k string   access token HMAC secret
//	-t int      access token validity, minutes (applied only when given)
//	-l string   log level
//	-seed bool  seed sample data on startup
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket
//	-r string   S3 region
//	-e string   S3 base endpoint
//
// os.Args is first filtered down to these flags with flagx.FilterArgs so
// that -c/-config and subcommand arguments do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-s", "-d", "-k", "-t", "-l", "-seed", "-u", "-p", "-b", "-r", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "HTTP address and port")
	fs.StringVar(&config.GRPCHealthAddr, "g", config.GRPCHealthAddr, "gRPC health address and port")
	fs.StringVar(&config.StorageKind, "s", config.StorageKind, "storage kind (memory|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "access token secret key")
	tokenMinutes := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SeedSampleData, "seed", config.SeedSampleData, "seed sample data on startup")

	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "p", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only carries whole minutes; leave finer values from JSON or the
	// environment alone unless the flag was given explicitly.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.AccessTokenValidityDuration = time.Duration(*tokenMinutes) * time.Minute
		}
	})
}
