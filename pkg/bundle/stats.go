package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
)

// Info summarizes a bundle directory on disk.
type Info struct {
	// TotalSize is the combined size of all files, in bytes.
	TotalSize int64

	// FileCount is the number of regular files.
	FileCount int
}

// Stat walks a ticket's staging directory and returns its size and file
// count. Returns ErrNotFound when the directory does not exist.
func Stat(p Paths) (Info, error) {
	var info Info
	err := filepath.WalkDir(p.StagingDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		info.TotalSize += fi.Size()
		info.FileCount++
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("no bundle for %s: %w", p.TicketID, ErrNotFound)
		}
		return Info{}, fmt.Errorf("scanning %s: %w", p.StagingDir, err)
	}
	return info, nil
}

// FormatSize renders a byte count in a human-readable unit.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
