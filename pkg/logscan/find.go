package logscan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ResponseDelimiter introduces an entry's response payload. The payload is
// the text after the delimiter on that line plus every following line up
// to the first blank line inside the entry.
const ResponseDelimiter = "response:"

// Correlation is the result of matching a request id to its log entry.
type Correlation struct {
	// Entry is the matched log entry.
	Entry *Entry

	// Payload is the entry's response payload. Empty when the entry
	// carries no response; a match without a payload is still a match.
	Payload string
}

// FindRequest scans the given log files in order for the first entry whose
// id equals requestID and extracts its response payload.
//
// Request ids are not guaranteed unique; the first match in file order
// wins. Missing files are skipped. Returns (nil, nil) when no entry
// matches — not-found is a successful outcome.
func FindRequest(ctx context.Context, logFiles []string, requestID string) (*Correlation, error) {
	for _, path := range logFiles {
		c, err := findInFile(ctx, path, requestID)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	return nil, nil
}

func findInFile(ctx context.Context, path, requestID string) (*Correlation, error) {
	source := NewEntrySource(path)
	defer source.Close()

	for {
		entry, err := source.Next(ctx)
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if entry.ID == requestID {
			return &Correlation{Entry: entry, Payload: extractPayload(entry)}, nil
		}
	}
}

// extractPayload pulls the response payload out of an entry's lines.
func extractPayload(entry *Entry) string {
	var payload []string
	collecting := false

	for _, line := range entry.Lines {
		if !collecting {
			idx := strings.Index(line, ResponseDelimiter)
			if idx < 0 {
				continue
			}
			collecting = true
			if rest := strings.TrimSpace(line[idx+len(ResponseDelimiter):]); rest != "" {
				payload = append(payload, rest)
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		payload = append(payload, line)
	}

	return strings.Join(payload, "\n")
}

// String renders a correlation for display.
func (c *Correlation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%s", c.Entry.ID)
	if c.Entry.Endpoint != "" {
		fmt.Fprintf(&b, " %s", c.Entry.Endpoint)
	}
	if c.Payload != "" {
		fmt.Fprintf(&b, "\n%s", c.Payload)
	}
	return b.String()
}
