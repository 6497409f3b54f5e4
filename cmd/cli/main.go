// Ticketlog - Ticket Log Retrieval Tool
//
// Ticketlog downloads a ticket's diagnostic log attachments, reassembles
// split archives into a local bundle, and answers find/search queries
// against the extracted log entries.
package main

import (
	"os"

	"github.com/stackborn/ticketlog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
