package config

import "os"

// Default values for configuration.
const (
	DefaultBaseDir        = "~/Downloads"
	DefaultOutputFolder   = "merged"
	DefaultAttachmentBase = "log"
	DefaultConfigFile     = ".ticketlog.yaml"
)

// Environment variable names.
const (
	EnvTrackerURL   = "TICKETLOG_URL"
	EnvTrackerEmail = "TICKETLOG_EMAIL"
	EnvTrackerToken = "TICKETLOG_TOKEN"
	EnvBaseDir      = "TICKETLOG_BASE_DIR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Logs: LogsConfig{
			BaseDir:        DefaultBaseDir,
			OutputFolder:   DefaultOutputFolder,
			AttachmentBase: DefaultAttachmentBase,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if url := os.Getenv(EnvTrackerURL); url != "" {
		c.Tracker.URL = url
	}
	if email := os.Getenv(EnvTrackerEmail); email != "" {
		c.Tracker.Email = email
	}
	if token := os.Getenv(EnvTrackerToken); token != "" {
		c.Tracker.APIToken = token
	}
	if dir := os.Getenv(EnvBaseDir); dir != "" {
		c.Logs.BaseDir = dir
	}
}
