// Package config provides configuration management for the networth service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, body limit)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Feed: Market endpoints, API key, cache ages and the warm schedule
//   - Reference: Where the reference tables are read from
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Feed.BazaarMaxAge)
package config
