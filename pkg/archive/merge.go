// Package archive reassembles split zip attachments and extracts them into
// a bundle directory.
package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// MissingShardError reports a gap in a split archive's continuation parts.
type MissingShardError struct {
	// Base is the archive base name, e.g. "log".
	Base string

	// Ordinal is the missing part number.
	Ordinal int
}

func (e *MissingShardError) Error() string {
	return fmt.Sprintf("missing shard %s.z%02d; re-download the ticket's attachments", e.Base, e.Ordinal)
}

// shard is one continuation part found on disk.
type shard struct {
	ordinal int
	path    string
}

// Reassemble produces the canonical merged archive from the primary
// <base>.zip in stagingDir plus any <base>.zNN continuation parts.
//
// With no parts the primary is copied byte-for-byte to mergedPath. With
// parts present, the ordinals must run 1..N with no gaps; the primary and
// each part are concatenated into mergedPath in ascending ordinal order.
// No decompression happens here.
func Reassemble(stagingDir, base, mergedPath string) error {
	primary := filepath.Join(stagingDir, base+".zip")
	if _, err := os.Stat(primary); err != nil {
		return fmt.Errorf("primary archive %s.zip not found in %s: %w", base, stagingDir, err)
	}

	shards, err := findShards(stagingDir, base)
	if err != nil {
		return err
	}

	if len(shards) == 0 {
		if err := copyFile(primary, mergedPath); err != nil {
			return fmt.Errorf("copying %s.zip to %s: %w", base, filepath.Base(mergedPath), err)
		}
		return nil
	}

	if err := checkContiguous(base, shards); err != nil {
		return err
	}

	out, err := os.Create(mergedPath) // #nosec G304 -- path is derived from the resolved bundle
	if err != nil {
		return fmt.Errorf("creating %s: %w", mergedPath, err)
	}
	defer out.Close()

	if err := appendFile(out, primary); err != nil {
		return err
	}
	for _, s := range shards {
		if err := appendFile(out, s.path); err != nil {
			return err
		}
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("finishing %s: %w", mergedPath, err)
	}
	return nil
}

// findShards scans stagingDir for <base>.zNN files and returns them sorted
// by ordinal.
func findShards(stagingDir, base string) ([]shard, error) {
	pattern := regexp.MustCompile(`^` + regexp.QuoteMeta(base) + `\.z(\d+)$`)

	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", stagingDir, err)
	}

	var shards []shard
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		ordinal, err := strconv.Atoi(m[1])
		if err != nil || ordinal < 1 {
			continue
		}
		shards = append(shards, shard{ordinal: ordinal, path: filepath.Join(stagingDir, entry.Name())})
	}

	sort.Slice(shards, func(i, j int) bool { return shards[i].ordinal < shards[j].ordinal })
	return shards, nil
}

// checkContiguous verifies the shard ordinals run 1..N with no gaps.
func checkContiguous(base string, shards []shard) error {
	want := 1
	for _, s := range shards {
		if s.ordinal != want {
			return &MissingShardError{Base: base, Ordinal: want}
		}
		want++
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) // #nosec G304 -- path comes from directory scan above
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst) // #nosec G304
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func appendFile(out *os.File, src string) error {
	in, err := os.Open(src) // #nosec G304 -- path comes from directory scan above
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("appending %s: %w", src, err)
	}
	return nil
}
