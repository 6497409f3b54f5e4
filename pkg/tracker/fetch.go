package tracker

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Source lists and downloads a ticket's attachments. *Client implements
// it; tests substitute an in-memory source.
type Source interface {
	ListAttachments(ctx context.Context, ticketID string) ([]Attachment, error)
	Download(ctx context.Context, att Attachment, w io.Writer) error
}

// ShardFilter decides whether an attachment filename belongs to the log
// shard set.
type ShardFilter func(filename string) bool

// DefaultShardFilter matches the log archive naming convention for the
// given base name: <base>.zip, <base>.zNN continuation parts, and loose
// .log / .txt files.
func DefaultShardFilter(base string) ShardFilter {
	archive := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `\.(zip|z\d+)$`)
	return func(filename string) bool {
		return archive.MatchString(filename) ||
			strings.HasSuffix(filename, ".log") ||
			strings.HasSuffix(filename, ".txt")
	}
}

// Fetcher downloads a ticket's attachments into a staging directory.
type Fetcher struct {
	source Source
	filter ShardFilter
}

// NewFetcher creates a fetcher reading from source. The filter selects the
// log shard set in logs-only mode.
func NewFetcher(source Source, filter ShardFilter) *Fetcher {
	return &Fetcher{source: source, filter: filter}
}

// Fetch lists the ticket's attachments, selects the ones to materialize
// (all of them when all is true, otherwise the log shard set), and writes
// their bytes into stagingDir, overwriting same-named files from earlier
// runs.
//
// A ticket with no attachments to download returns an empty slice, not an
// error; the caller reports "nothing to download". A failed download
// aborts the whole fetch with the attachment name in the error.
func (f *Fetcher) Fetch(ctx context.Context, ticketID, stagingDir string, all bool) ([]Attachment, error) {
	attachments, err := f.source.ListAttachments(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	selected := attachments
	if !all {
		selected = selected[:0:0]
		for _, att := range attachments {
			if f.filter(att.Filename) {
				selected = append(selected, att)
			}
		}
	}
	if len(selected) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating staging directory %s: %w", stagingDir, err)
	}

	for _, att := range selected {
		if err := f.fetchOne(ctx, att, stagingDir); err != nil {
			return nil, fmt.Errorf("downloading %s: %w", att.Filename, err)
		}
	}

	return selected, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, att Attachment, stagingDir string) error {
	path := filepath.Join(stagingDir, filepath.Base(att.Filename))

	out, err := os.Create(path) // #nosec G304 -- staging path derives from the resolved bundle
	if err != nil {
		return err
	}
	defer out.Close()

	if err := f.source.Download(ctx, att, out); err != nil {
		return err
	}
	return out.Close()
}
