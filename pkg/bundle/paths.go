// Package bundle resolves and manages per-ticket log bundle directories.
//
// One ticket maps to one fixed directory tree under the configured base
// directory. Concurrent invocations for the same ticket are not
// coordinated; the last extraction wins. This matches the tool's
// single-user, interactive use pattern.
package bundle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a ticket's bundle has not been downloaded.
var ErrNotFound = errors.New("bundle not downloaded")

// MergedArchiveName is the canonical name of the reassembled archive.
const MergedArchiveName = "merged.zip"

// WellKnownLogs lists the log filenames a bundle is expected to contain,
// in the fixed order queries iterate them.
var WellKnownLogs = []string{"api.log", "flutter-api.log"}

// Paths holds every on-disk location derived from a ticket id.
type Paths struct {
	// TicketID is the ticket the paths were resolved for.
	TicketID string

	// StagingDir holds raw downloaded attachment bytes, the merged
	// archive, and the extraction directory.
	StagingDir string

	// MergedArchive is the canonical reassembled archive file.
	MergedArchive string

	// ExtractDir is the extraction directory holding the log files.
	ExtractDir string
}

// Resolve computes the bundle paths for a ticket. It is a pure function of
// its inputs and performs no filesystem access.
func Resolve(baseDir, outputFolder, ticketID string) Paths {
	staging := filepath.Join(baseDir, "logs_"+ticketID)
	return Paths{
		TicketID:      ticketID,
		StagingDir:    staging,
		MergedArchive: filepath.Join(staging, MergedArchiveName),
		ExtractDir:    filepath.Join(staging, outputFolder),
	}
}

// LogFiles returns the well-known log file paths inside dir, in the fixed
// iteration order. The files are not required to exist.
func LogFiles(dir string) []string {
	files := make([]string, len(WellKnownLogs))
	for i, name := range WellKnownLogs {
		files[i] = filepath.Join(dir, name)
	}
	return files
}

// Dir locates the directory holding a ticket's log files. It prefers the
// extraction directory; when only loose log attachments were staged (no
// archive on the ticket), the staging directory itself is the bundle.
// Returns ErrNotFound when neither exists.
func (p Paths) Dir() (string, error) {
	if info, err := os.Stat(p.ExtractDir); err == nil && info.IsDir() {
		return p.ExtractDir, nil
	}
	if info, err := os.Stat(p.StagingDir); err == nil && info.IsDir() {
		for _, f := range LogFiles(p.StagingDir) {
			if _, err := os.Stat(f); err == nil {
				return p.StagingDir, nil
			}
		}
	}
	return "", fmt.Errorf("no logs for %s: %w (run download first)", p.TicketID, ErrNotFound)
}
