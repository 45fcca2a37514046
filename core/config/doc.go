// Package config provides configuration management for Sentinel.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file, with struct-tag defaults as the base layer.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - State: audited device, document locations and backend selection
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.State.DeviceID)
package config
