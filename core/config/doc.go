// Package config provides configuration management for the match tracker.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, CORS origins)
//   - Database: MySQL/SQLite connection details
//   - Log: Logging level and format
//   - Storage: optional S3/MinIO thumbnail mirror credentials
//   - BGG: BoardGameGeek collection sync settings (username, token,
//     rate-limit spacing, retry policy)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.BGG.Username)
package config
