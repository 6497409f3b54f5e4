package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Extract decompresses the merged archive into destDir, preserving the
// archive's internal relative paths.
//
// Extraction happens in a temporary sibling directory which is renamed over
// destDir only after every entry decompressed cleanly, so query commands
// never see a half-extracted bundle. Re-extracting replaces any prior
// contents.
func Extract(archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("corrupt or unreadable archive %s: %w (re-run download)", archivePath, err)
	}
	defer reader.Close()

	tmpDir := destDir + ".tmp"
	if err := os.RemoveAll(tmpDir); err != nil {
		return fmt.Errorf("clearing %s: %w", tmpDir, err)
	}
	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", tmpDir, err)
	}

	for _, entry := range reader.File {
		if err := extractEntry(entry, tmpDir); err != nil {
			_ = os.RemoveAll(tmpDir)
			return fmt.Errorf("corrupt or unreadable archive %s: %w (re-run download)", archivePath, err)
		}
	}

	if err := os.RemoveAll(destDir); err != nil {
		return fmt.Errorf("replacing %s: %w", destDir, err)
	}
	if err := os.Rename(tmpDir, destDir); err != nil {
		return fmt.Errorf("moving extracted logs into %s: %w", destDir, err)
	}
	return nil
}

func extractEntry(entry *zip.File, destDir string) error {
	target, err := safeJoin(destDir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", entry.Name, err)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target) // #nosec G304 -- target is validated by safeJoin
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil { // #nosec G110 -- bundle archives are trusted ticket attachments
		return fmt.Errorf("extracting %s: %w", entry.Name, err)
	}
	return dst.Close()
}

// safeJoin joins an archive entry name onto destDir, rejecting names that
// would escape it.
func safeJoin(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	if target != destDir && !strings.HasPrefix(target, destDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %q escapes the extraction directory", name)
	}
	return target, nil
}
