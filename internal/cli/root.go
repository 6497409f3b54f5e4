// Package cli provides the command-line interface for ticketlog.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackborn/ticketlog/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ticketlog",
		Short: "Fetch and query diagnostic log attachments from tickets",
		Long: `Ticketlog downloads a ticket's diagnostic log attachments, reassembles
split archives, and extracts them into a local per-ticket bundle.

Against a downloaded bundle it answers two questions:
  - find:   which entry handled request #N, and what response did it send?
  - search: which entries mention this keyword, case-insensitively?

Exit codes:
  0 - Success (including "not found" and empty search results)
  2 - Configuration or runtime error`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&commands.ConfigPath, "config", "",
		"Path to config file (default ~/.ticketlog.yaml)")

	// Add subcommands
	rootCmd.AddCommand(commands.NewDownloadCommand())
	rootCmd.AddCommand(commands.NewFindCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewCleanCommand())
	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
