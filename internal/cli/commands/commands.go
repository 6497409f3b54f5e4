// Package commands implements the ticketlog subcommands.
package commands

import (
	"github.com/stackborn/ticketlog/pkg/bundle"
	"github.com/stackborn/ticketlog/pkg/config"
)

// ExitCode is set by commands to indicate the result.
var ExitCode = 0

// ConfigPath is set by the root command's --config flag.
var ConfigPath = ""

// loadConfig loads the tool configuration honoring the --config flag.
func loadConfig() (*config.Config, error) {
	return config.Load(ConfigPath)
}

// resolvePaths loads the configuration and resolves a ticket's bundle paths.
func resolvePaths(ticketID string) (*config.Config, bundle.Paths, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, bundle.Paths{}, err
	}
	return cfg, bundle.Resolve(cfg.Logs.BaseDir, cfg.Logs.OutputFolder, ticketID), nil
}
