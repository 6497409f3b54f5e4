package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackborn/ticketlog/pkg/bundle"
	"github.com/stackborn/ticketlog/pkg/output"
)

// CleanOptions holds command-line options for the clean command.
type CleanOptions struct {
	All bool
}

// NewCleanCommand creates the clean command.
func NewCleanCommand() *cobra.Command {
	opts := &CleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean [ticket-id]",
		Short: "Remove a ticket's downloaded log bundle",
		Long: `Remove the staging and extraction directories of a ticket's bundle.

Cleaning a bundle that was never downloaded is a no-op success. With
--all, every per-ticket bundle under the base directory is removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Remove every ticket's bundle")

	return cmd
}

func runClean(cmd *cobra.Command, args []string, opts *CleanOptions) error {
	printer := output.NewPrinter(cmd.OutOrStdout())

	if opts.All {
		if len(args) != 0 {
			return errors.New("--all cannot be combined with a ticket id")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		removed, err := bundle.CleanAll(cfg.Logs.BaseDir)
		if err != nil {
			return fmt.Errorf("cleaning bundles: %w", err)
		}
		if len(removed) == 0 {
			printer.Infof("No bundles to clean")
			return nil
		}
		for _, ticketID := range removed {
			printer.Successf("Removed bundle for %s", ticketID)
		}
		return nil
	}

	if len(args) != 1 {
		return errors.New("a ticket id is required unless --all is given")
	}
	ticketID := args[0]

	_, paths, err := resolvePaths(ticketID)
	if err != nil {
		return err
	}
	removed, err := bundle.Clean(paths)
	if err != nil {
		return fmt.Errorf("cleaning bundle for %s: %w", ticketID, err)
	}
	if !removed {
		printer.Infof("No bundle for %s; nothing to clean", ticketID)
		return nil
	}
	printer.Successf("Removed bundle for %s", ticketID)
	return nil
}
