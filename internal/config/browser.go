package config

import (
	"fmt"
	"strconv"
	"time"
)

// Supported browser engines
const (
	Chromium = "chromium"
	Firefox  = "firefox"
	WebKit   = "webkit"
)

// BrowserConfig holds configuration for the automated browser
type BrowserConfig struct {
	Name              string
	Headless          bool
	SlowMo            time.Duration
	Locale            string
	ViewportWidth     int
	ViewportHeight    int
	IgnoreHTTPSErrors bool
	ActionTimeout     time.Duration
	NavigationTimeout time.Duration
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (*BrowserConfig, error) {
	config := &BrowserConfig{
		Name:              getenv("BROWSER"),
		Headless:          true,
		Locale:            getenv("BROWSER_LANG"),
		ViewportWidth:     1680,
		ViewportHeight:    900,
		ActionTimeout:     10 * time.Second,
		NavigationTimeout: 30 * time.Second,
	}

	switch config.Name {
	case "":
		config.Name = Chromium // Default to chromium
	case Chromium, Firefox, WebKit:
	default:
		return nil, fmt.Errorf("BROWSER must be one of %s, %s, %s: got %q", Chromium, Firefox, WebKit, config.Name)
	}
	if config.Locale == "" {
		config.Locale = "en-GB"
	}

	if v := getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("HEADLESS must be a boolean: %w", err)
		}
		config.Headless = headless
	}
	if v := getenv("IGNORE_HTTPS_ERRORS"); v != "" {
		ignore, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("IGNORE_HTTPS_ERRORS must be a boolean: %w", err)
		}
		config.IgnoreHTTPSErrors = ignore
	}
	if v := getenv("SLOW_MO"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("SLOW_MO must be a non-negative number of milliseconds: %q", v)
		}
		config.SlowMo = time.Duration(ms) * time.Millisecond
	}

	durations := []struct {
		key    string
		target *time.Duration
	}{
		{"ACTION_TIMEOUT", &config.ActionTimeout},
		{"NAVIGATION_TIMEOUT", &config.NavigationTimeout},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("%s must be a positive duration: %q", d.key, v)
		}
		*d.target = parsed
	}

	return config, nil
}
