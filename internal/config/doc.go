// Package config manages deltav user preferences.
//
// It handles:
//   - Loading and saving the TOML config file
//   - Defaults for the session, chart and log settings
//   - Getting and setting individual values by dotted key
//
// Stage data is never stored here.
package config
