package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackborn/ticketlog/pkg/bundle"
	"github.com/stackborn/ticketlog/pkg/logscan"
	"github.com/stackborn/ticketlog/pkg/output"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <ticket-id> <keyword>",
		Short: "Search the ticket's log entries for a keyword",
		Long: `Scan every entry in every log file of the ticket's downloaded bundle
for a case-insensitive substring match and list the matching entries.

Results keep file-scan order; an empty result is a normal outcome.`,
		Args: cobra.ExactArgs(2),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	ticketID, keyword := args[0], args[1]
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

	matches, err := logscan.SearchKeyword(ctx, bundle.LogFiles(dir), keyword)
	if err != nil {
		return fmt.Errorf("searching logs for %s: %w", ticketID, err)
	}
	if len(matches) == 0 {
		printer.Infof("No entries matching %q in %s", keyword, ticketID)
		return nil
	}

	printer.Matches(matches)
	printer.Infof("%d matching entr%s", len(matches), pluralY(len(matches)))
	return nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
