// Package config provides configuration management for the campaign uploader.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP trigger server settings (port, API key)
//   - Log: Logging level and format
//   - Auth: OAuth2 client credentials and refresh token
//   - Sheets: Campaign spreadsheet id and header layout
//   - Ads: Ads API endpoint, version and developer token
//   - Storage: S3/MinIO credentials for the media bucket
//   - Database: MySQL connection for the upload-run history
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sheets.SpreadsheetID)
package config
