package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Clean removes a ticket's staging directory, including the merged archive
// and extraction directory inside it. Cleaning an absent bundle is a no-op
// success.
func Clean(p Paths) (bool, error) {
	if _, err := os.Stat(p.StagingDir); os.IsNotExist(err) {
		return false, nil
	}
	if err := os.RemoveAll(p.StagingDir); err != nil {
		return false, fmt.Errorf("removing %s: %w", p.StagingDir, err)
	}
	return true, nil
}

// CleanAll removes every per-ticket bundle directory under baseDir and
// returns the ticket ids that were removed, sorted. Only directories
// matching the logs_<ticket> naming convention are touched.
func CleanAll(baseDir string) ([]string, error) {
	entries, err := os.ReadDir(baseDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", baseDir, err)
	}

	var removed []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ticketID, ok := strings.CutPrefix(entry.Name(), "logs_")
		if !ok || ticketID == "" {
			continue
		}
		dir := filepath.Join(baseDir, entry.Name())
		if err := os.RemoveAll(dir); err != nil {
			return removed, fmt.Errorf("removing %s: %w", dir, err)
		}
		removed = append(removed, ticketID)
	}

	sort.Strings(removed)
	return removed, nil
}
