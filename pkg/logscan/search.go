package logscan

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
)

// Match is one keyword hit: the entry's identifier and endpoint label.
type Match struct {
	ID       string
	Endpoint string
	Source   string
}

// SearchKeyword scans every entry in every given log file for a
// case-insensitive substring match against the entry's full text, marker
// line included. Results come back in file-scan order, files in the order
// given. Within one file an id is reported at most once.
//
// Missing files are skipped; no matches yields an empty slice, not an
// error.
func SearchKeyword(ctx context.Context, logFiles []string, keyword string) ([]Match, error) {
	needle := strings.ToLower(keyword)

	var matches []Match
	for _, path := range logFiles {
		fileMatches, err := searchFile(ctx, path, needle)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		matches = append(matches, fileMatches...)
	}
	return matches, nil
}

func searchFile(ctx context.Context, path, needle string) ([]Match, error) {
	source := NewEntrySource(path)
	defer source.Close()

	var matches []Match
	seen := make(map[string]bool)

	for {
		entry, err := source.Next(ctx)
		if err == io.EOF {
			return matches, nil
		}
		if err != nil {
			return nil, err
		}

		if entry.ID == "" || seen[entry.ID] {
			continue
		}
		if !strings.Contains(strings.ToLower(entry.Text()), needle) {
			continue
		}

		seen[entry.ID] = true
		matches = append(matches, Match{ID: entry.ID, Endpoint: entry.Endpoint, Source: path})
	}
}
