// Package config provides configuration management for planetmoney-dl.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Resolving the media pattern and HTTP options
//   - Building the diagnostics logger
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads urls.txt, writes to ".", npr-2016 pattern, 1024 byte chunks
//
// # Loading from File
//
//	// Defaults if the file doesn't exist
//	settings, err := config.Load(config.DefaultFileName)
//
//	// The file must exist
//	settings, err := config.LoadFile("/path/to/config.json")
//
// # Logger
//
//	logger, err := config.NewLogger(os.Stderr, settings.LogLevel)
package config
