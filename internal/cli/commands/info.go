package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/stackborn/ticketlog/pkg/bundle"
	"github.com/stackborn/ticketlog/pkg/output"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <ticket-id>",
		Short: "Show where a ticket's bundle lives and how big it is",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	ticketID := args[0]
	printer := output.NewPrinter(cmd.OutOrStdout())

	_, paths, err := resolvePaths(ticketID)
	if err != nil {
		return err
	}

	info, err := bundle.Stat(paths)
	if errors.Is(err, bundle.ErrNotFound) {
		printer.Infof("No bundle for %s; run 'ticketlog download %s' first", ticketID, ticketID)
		return nil
	}
	if err != nil {
		return err
	}

	printer.Headerf("Bundle for %s", ticketID)
	printer.Infof("  Location: %s", paths.StagingDir)
	printer.Infof("  Size:     %s", bundle.FormatSize(info.TotalSize))
	printer.Infof("  Files:    %d", info.FileCount)
	return nil
}
