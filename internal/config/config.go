package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Config holds runtime settings for the viewer. Everything except the feed
// URL is a compiled-in default; there are no flags, environment variables or
// config files. Date formats live here so formatting is explicit
// configuration handed down to the views, not process-wide state.
type Config struct {
	FeedURL      string
	ExportDir    string
	HTTPTimeout  time.Duration
	DateFormat   string
	SummaryLines int
}

func Default() Config {
	return Config{
		ExportDir:    "articles",
		HTTPTimeout:  15 * time.Second,
		DateFormat:   "2006-01-02 15:04",
		SummaryLines: 2,
	}
}

func (c Config) Validate() error {
	if c.FeedURL == "" {
		return errors.New("feed URL is required")
	}
	parsed, err := url.Parse(c.FeedURL)
	if err != nil {
		return fmt.Errorf("invalid feed URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("feed URL must be http or https: %s", c.FeedURL)
	}
	if c.ExportDir == "" {
		return errors.New("ExportDir is required")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("HTTPTimeout must be positive")
	}
	if c.DateFormat == "" {
		return errors.New("DateFormat is required")
	}
	if c.SummaryLines < 0 {
		return fmt.Errorf("SummaryLines must not be negative: %d", c.SummaryLines)
	}
	return nil
}
