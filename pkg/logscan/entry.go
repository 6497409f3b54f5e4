// Package logscan splits extracted log files into entries and answers the
// two bundle queries: find a request id's response payload, and search for
// a keyword across all entries.
package logscan

import (
	"regexp"
	"strings"
)

// Marker is the token that opens every log entry. A line beginning with it
// starts a new entry; everything up to the next marker line belongs to the
// current one.
const Marker = "💡"

// Entry is one contiguous span of lines within a log file.
type Entry struct {
	// ID is the request identifier parsed from the marker line (the
	// digits after '#'). Empty when the marker line doesn't carry one.
	// IDs are only unique within a single file.
	ID string

	// Endpoint is the URL-like label parsed from the entry, if any.
	Endpoint string

	// Source is the file path the entry came from.
	Source string

	// LineNum is the 1-based line number of the entry's first line.
	LineNum int

	// Lines holds the entry's raw lines, marker line included.
	Lines []string
}

// Text returns the entry's full body, marker line included.
func (e *Entry) Text() string {
	return strings.Join(e.Lines, "\n")
}

var (
	idPattern = regexp.MustCompile(`#(\d+)`)

	// Endpoint extraction conventions, tried in order: a URL following an
	// HTTP method token, a URL following a bare number, then any URL.
	methodURLPattern = regexp.MustCompile(`(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS)\s+(https?://[^\s",]+)`)
	numberURLPattern = regexp.MustCompile(`\d+\s+(https?://[^\s",]+)`)
	bareURLPattern   = regexp.MustCompile(`https?://[^\s",]+`)
)

// parseID extracts the #<digits> request id from a marker line. Returns ""
// when the line doesn't follow the convention; a malformed marker line is
// not an error.
func parseID(line string) string {
	m := idPattern.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractEndpoint pulls a URL-like endpoint label out of a line.
func extractEndpoint(line string) string {
	if m := methodURLPattern.FindStringSubmatch(line); m != nil {
		return cleanURL(m[2])
	}
	if m := numberURLPattern.FindStringSubmatch(line); m != nil {
		return cleanURL(m[1])
	}
	if m := bareURLPattern.FindString(line); m != "" {
		return cleanURL(m)
	}
	return ""
}

func cleanURL(u string) string {
	return strings.TrimRight(u, `"' ,}`)
}
