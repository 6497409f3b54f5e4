package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/stackborn/ticketlog/pkg/bundle"
	"github.com/stackborn/ticketlog/pkg/logscan"
	"github.com/stackborn/ticketlog/pkg/output"
)

// FindOptions holds command-line options for the find command.
type FindOptions struct {
	Copy bool
}

// NewFindCommand creates the find command.
func NewFindCommand() *cobra.Command {
	opts := &FindOptions{}

	cmd := &cobra.Command{
		Use:   "find <ticket-id> <request-id>",
		Short: "Find the log entry for a request id and print its response",
		Long: `Scan the ticket's downloaded log bundle for the entry matching the
given request id and print its endpoint and response payload.

Request ids are only unique within a file; the first match in file order
wins. "Not found" is a normal outcome, not an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Copy, "copy", false, "Copy the response payload to the clipboard")

	return cmd
}

func runFind(cmd *cobra.Command, args []string, opts *FindOptions) error {
	ticketID, requestID := args[0], args[1]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	printer := output.NewPrinter(cmd.OutOrStdout())

	_, paths, err := resolvePaths(ticketID)
	if err != nil {
		return err
	}
	dir, err := paths.Dir()
	if err != nil {
		return err
	}

	result, err := logscan.FindRequest(ctx, bundle.LogFiles(dir), requestID)
	if err != nil {
		return fmt.Errorf("scanning logs for %s: %w", ticketID, err)
	}
	if result == nil {
		printer.Infof("No entry found for request #%s in %s", requestID, ticketID)
		return nil
	}

	printer.Correlation(result)

	if opts.Copy && result.Payload != "" {
		if err := clipboard.WriteAll(result.Payload); err != nil {
			printer.Infof("(could not copy to clipboard: %v)", err)
		} else {
			printer.Successf("Response payload copied to clipboard")
		}
	}
	return nil
}
