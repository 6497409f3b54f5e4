package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path means the
// default location (~/.ticketlog.yaml); a missing file at the default
// location is not an error and yields the built-in defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, DefaultConfigFile)
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file at the default location: run on defaults.
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and normalizes paths.
func Validate(cfg *Config) error {
	if cfg.Logs.BaseDir == "" {
		cfg.Logs.BaseDir = DefaultBaseDir
	}
	dir, err := ExpandHome(cfg.Logs.BaseDir)
	if err != nil {
		return fmt.Errorf("logs.base_dir: %w", err)
	}
	cfg.Logs.BaseDir = dir

	if cfg.Logs.OutputFolder == "" {
		cfg.Logs.OutputFolder = DefaultOutputFolder
	}
	if strings.ContainsRune(cfg.Logs.OutputFolder, os.PathSeparator) {
		return fmt.Errorf("logs.output_folder: %q must be a plain directory name", cfg.Logs.OutputFolder)
	}

	if cfg.Logs.AttachmentBase == "" {
		cfg.Logs.AttachmentBase = DefaultAttachmentBase
	}
	if strings.ContainsAny(cfg.Logs.AttachmentBase, `/\.`) {
		return fmt.Errorf("logs.attachment_base: %q must be a plain base name without extension", cfg.Logs.AttachmentBase)
	}

	return nil
}

// RequireTracker checks that the tracker connection settings needed by
// network commands are present.
func (c *Config) RequireTracker() error {
	if c.Tracker.URL == "" {
		return fmt.Errorf("tracker.url is required (set it in ~/%s or %s)", DefaultConfigFile, EnvTrackerURL)
	}
	if c.Tracker.Email == "" {
		return fmt.Errorf("tracker.email is required (set it in ~/%s or %s)", DefaultConfigFile, EnvTrackerEmail)
	}
	if c.Tracker.APIToken == "" {
		return fmt.Errorf("tracker.api_token is required (set it in ~/%s or %s)", DefaultConfigFile, EnvTrackerToken)
	}
	return nil
}

// ExpandHome expands a leading ~ or ~/ in a path to the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
