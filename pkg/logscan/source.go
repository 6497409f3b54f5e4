package logscan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// EntrySource iterates over the entries of one log file. It reads
// line-by-line and never buffers the whole file. A fresh source starts
// from the top of the file, so re-scanning means constructing a new one.
//
// Not safe for concurrent use.
type EntrySource struct {
	path string

	file    *os.File
	scanner *bufio.Scanner
	lineNum int
	pending *Entry
	done    bool
}

// NewEntrySource creates an entry iterator over the given log file. The
// file is opened on the first call to Next.
func NewEntrySource(path string) *EntrySource {
	return &EntrySource{path: path}
}

// Next returns the next entry in file order. Returns io.EOF when the file
// is exhausted.
//
// Lines before the first marker form an entry of their own with no id or
// endpoint, so the concatenation of all yielded entries reproduces the
// file exactly.
func (s *EntrySource) Next(ctx context.Context) (*Entry, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.open(); err != nil {
			return nil, err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !s.scanner.Scan() {
			break
		}
		s.lineNum++
		line := s.scanner.Text()

		if strings.HasPrefix(line, Marker) {
			next := s.newEntry(line)
			if finished := s.pending; finished != nil {
				s.pending = next
				return finished, nil
			}
			s.pending = next
			continue
		}

		if s.pending == nil {
			// Content before the first marker.
			s.pending = &Entry{Source: s.path, LineNum: s.lineNum}
		}
		s.pending.Lines = append(s.pending.Lines, line)
		if s.pending.Endpoint == "" {
			s.pending.Endpoint = extractEndpoint(line)
		}
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	s.done = true
	if finished := s.pending; finished != nil {
		s.pending = nil
		return finished, nil
	}
	return nil, io.EOF
}

// Close releases the underlying file.
func (s *EntrySource) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.scanner = nil
	return err
}

func (s *EntrySource) open() error {
	f, err := os.Open(s.path) // #nosec G304 -- bundle paths are expected
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", s.path, err)
	}
	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size
	return nil
}

func (s *EntrySource) newEntry(markerLine string) *Entry {
	return &Entry{
		ID:       parseID(markerLine),
		Endpoint: extractEndpoint(markerLine),
		Source:   s.path,
		LineNum:  s.lineNum,
		Lines:    []string{markerLine},
	}
}
