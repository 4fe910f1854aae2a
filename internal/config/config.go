// Package config defines and loads watcher configuration.
//
// Configuration layers defaults, an optional YAML file, and TOUR_-prefixed
// environment variables, in that order of precedence. All source page layout
// constants (row width, cut line, data selector) live here so the parsing
// core stays free of globals.
package config

import "time"

// Config holds everything the watcher needs for one deployment.
type Config struct {
	// SourceURL is the leaderboard page to scrape.
	SourceURL string `koanf:"source_url"`

	// DataSelector matches the elements carrying leaderboard cell text.
	DataSelector string `koanf:"data_selector"`

	// RowWidth is the number of tokens per reconstructed row.
	RowWidth int `koanf:"row_width"`

	// CutLine is the expected number of full-shape rows; snapshots that
	// come up short are logged, not rejected.
	CutLine int `koanf:"cut_line"`

	// PollSeconds is the cadence between cycle starts.
	PollSeconds int `koanf:"poll_seconds"`

	// OffsetHours shifts the capture timestamp into the sheet's zone.
	OffsetHours int `koanf:"offset_hours"`

	// SpreadsheetID and SheetName identify the destination sheet.
	SpreadsheetID string `koanf:"spreadsheet_id"`
	SheetName     string `koanf:"sheet_name"`

	// SheetsToken is the bearer token for the Sheets API.
	SheetsToken string `koanf:"sheets_token"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// New creates a Config with the reference deployment's defaults.
func New() *Config {
	return &Config{
		DataSelector: ".data",
		RowWidth:     10,
		CutLine:      52,
		PollSeconds:  600,
		OffsetHours:  -6,
		SheetName:    "leaderboard",
		LogLevel:     "info",
	}
}

// PollInterval returns the cadence between cycle starts.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollSeconds) * time.Second
}

// Offset returns the timestamp correction applied to capture times.
func (c *Config) Offset() time.Duration {
	return time.Duration(c.OffsetHours) * time.Hour
}
