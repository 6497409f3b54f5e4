// Package config handles loading and validating the tool configuration.
package config

// Config is the top-level tool configuration, loaded from a YAML file
// (default ~/.ticketlog.yaml) with environment variable overrides.
type Config struct {
	Tracker TrackerConfig `yaml:"tracker"`
	Logs    LogsConfig    `yaml:"logs"`
}

// TrackerConfig holds the issue-tracker connection settings. These are only
// required by commands that touch the network (download); find, search and
// clean operate on the local bundle alone.
type TrackerConfig struct {
	// URL is the tracker base URL, e.g. https://example.atlassian.net.
	URL string `yaml:"url"`

	// Email is the account used for basic auth.
	Email string `yaml:"email"`

	// APIToken is the API token paired with Email.
	APIToken string `yaml:"api_token"`
}

// LogsConfig controls where bundles live on disk and which attachments
// count as log archive shards.
type LogsConfig struct {
	// BaseDir is the directory under which per-ticket bundle directories
	// are created. A leading ~ is expanded to the user's home directory.
	BaseDir string `yaml:"base_dir"`

	// OutputFolder is the name of the extraction directory inside a
	// ticket's bundle directory.
	OutputFolder string `yaml:"output_folder"`

	// AttachmentBase is the base name of the split log archive uploaded
	// to tickets: <base>.zip plus optional <base>.zNN continuation parts.
	AttachmentBase string `yaml:"attachment_base"`
}
