package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/stackborn/ticketlog/pkg/archive"
	"github.com/stackborn/ticketlog/pkg/output"
	"github.com/stackborn/ticketlog/pkg/tracker"
)

// DownloadOptions holds command-line options for the download command.
type DownloadOptions struct {
	All bool
}

// NewDownloadCommand creates the download command.
func NewDownloadCommand() *cobra.Command {
	opts := &DownloadOptions{}

	cmd := &cobra.Command{
		Use:   "download <ticket-id>",
		Short: "Download a ticket's log attachments into a local bundle",
		Long: `Download the log attachments of a ticket, reassemble split zip shards,
and extract the archive into the ticket's bundle directory.

By default only attachments matching the log naming convention are
downloaded (<base>.zip, <base>.zNN shards, plus loose .log/.txt files).
Re-running download replaces the previous bundle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Download every attachment regardless of name")

	return cmd
}

func runDownload(cmd *cobra.Command, args []string, opts *DownloadOptions) error {
	ticketID := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	printer := output.NewPrinter(cmd.OutOrStdout())

	cfg, paths, err := resolvePaths(ticketID)
	if err != nil {
		return err
	}
	if err := cfg.RequireTracker(); err != nil {
		return err
	}

	client := tracker.NewClient(cfg.Tracker.URL, cfg.Tracker.Email, cfg.Tracker.APIToken)
	fetcher := tracker.NewFetcher(client, tracker.DefaultShardFilter(cfg.Logs.AttachmentBase))

	attachments, err := fetcher.Fetch(ctx, ticketID, paths.StagingDir, opts.All)
	if err != nil {
		return fmt.Errorf("downloading logs for %s: %w", ticketID, err)
	}
	if len(attachments) == 0 {
		printer.Infof("Nothing to download: %s has no matching attachments", ticketID)
		return nil
	}
	for _, att := range attachments {
		printer.Infof("  downloaded %s (%d bytes)", att.Filename, att.Size)
	}

	// An archive is only present when the ticket carried <base>.zip;
	// loose .log/.txt attachments stage directly as the bundle.
	primary := filepath.Join(paths.StagingDir, cfg.Logs.AttachmentBase+".zip")
	if _, err := os.Stat(primary); err == nil {
		if err := archive.Reassemble(paths.StagingDir, cfg.Logs.AttachmentBase, paths.MergedArchive); err != nil {
			return fmt.Errorf("reassembling archive for %s: %w", ticketID, err)
		}
		if err := archive.Extract(paths.MergedArchive, paths.ExtractDir); err != nil {
			return fmt.Errorf("extracting archive for %s: %w", ticketID, err)
		}
	}

	dir, err := paths.Dir()
	if err != nil {
		// Attachments were staged but none of them are log files.
		printer.Infof("Downloaded %d attachment(s) to %s", len(attachments), paths.StagingDir)
		return nil
	}
	printer.Successf("Logs for %s ready in %s", ticketID, dir)
	return nil
}
