package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	p := Resolve("/tmp/base", "merged", "PROJ-123")

	if p.TicketID != "PROJ-123" {
		t.Errorf("TicketID = %q", p.TicketID)
	}
	if p.StagingDir != filepath.Join("/tmp/base", "logs_PROJ-123") {
		t.Errorf("StagingDir = %q", p.StagingDir)
	}
	if p.MergedArchive != filepath.Join(p.StagingDir, "merged.zip") {
		t.Errorf("MergedArchive = %q", p.MergedArchive)
	}
	if p.ExtractDir != filepath.Join(p.StagingDir, "merged") {
		t.Errorf("ExtractDir = %q", p.ExtractDir)
	}
}

func TestLogFiles_Order(t *testing.T) {
	files := LogFiles("/bundle")
	if len(files) != 2 {
		t.Fatalf("Got %d log files, want 2", len(files))
	}
	if filepath.Base(files[0]) != "api.log" || filepath.Base(files[1]) != "flutter-api.log" {
		t.Errorf("Log file order = %v, want api.log then flutter-api.log", files)
	}
}

func TestDir_NotDownloaded(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-1")

	_, err := p.Dir()
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Dir() error = %v, want ErrNotFound", err)
	}
}

func TestDir_Extracted(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-1")
	if err := os.MkdirAll(p.ExtractDir, 0755); err != nil {
		t.Fatal(err)
	}

	dir, err := p.Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if dir != p.ExtractDir {
		t.Errorf("Dir() = %q, want extraction directory", dir)
	}
}

func TestDir_LooseStagedLogs(t *testing.T) {
	// A ticket with only loose .log attachments has no extraction dir;
	// the staging directory is the bundle.
	p := Resolve(t.TempDir(), "merged", "PROJ-1")
	if err := os.MkdirAll(p.StagingDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(p.StagingDir, "api.log"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err := p.Dir()
	if err != nil {
		t.Fatalf("Dir() error = %v", err)
	}
	if dir != p.StagingDir {
		t.Errorf("Dir() = %q, want staging directory", dir)
	}
}

func TestDir_StagingWithoutLogs(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-1")
	if err := os.MkdirAll(p.StagingDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(p.StagingDir, "screenshot.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := p.Dir(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Dir() error = %v, want ErrNotFound", err)
	}
}

func TestClean(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-1")
	if err := os.MkdirAll(p.ExtractDir, 0755); err != nil {
		t.Fatal(err)
	}

	removed, err := Clean(p)
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if !removed {
		t.Error("Clean() = false, want true for an existing bundle")
	}
	if _, err := os.Stat(p.StagingDir); !os.IsNotExist(err) {
		t.Error("Staging directory survived Clean()")
	}
}

func TestClean_AbsentBundle(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-404")

	removed, err := Clean(p)
	if err != nil {
		t.Fatalf("Clean() on absent bundle error = %v, want no-op success", err)
	}
	if removed {
		t.Error("Clean() = true for an absent bundle")
	}

	// Idempotent: a second call is still a no-op success.
	if _, err := Clean(p); err != nil {
		t.Fatalf("Second Clean() error = %v", err)
	}
}

func TestCleanAll(t *testing.T) {
	base := t.TempDir()
	for _, ticket := range []string{"PROJ-2", "PROJ-1"} {
		if err := os.MkdirAll(filepath.Join(base, "logs_"+ticket), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// Unrelated directories stay untouched.
	other := filepath.Join(base, "keep-me")
	if err := os.MkdirAll(other, 0755); err != nil {
		t.Fatal(err)
	}

	removed, err := CleanAll(base)
	if err != nil {
		t.Fatalf("CleanAll() error = %v", err)
	}
	if len(removed) != 2 || removed[0] != "PROJ-1" || removed[1] != "PROJ-2" {
		t.Errorf("Removed = %v, want sorted ticket ids", removed)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("Unrelated directory removed: %v", err)
	}
}

func TestStat(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-1")
	if err := os.MkdirAll(p.ExtractDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(p.ExtractDir, "api.log"), []byte("12345"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(p.StagingDir, "log.zip"), []byte("123"), 0644); err != nil {
		t.Fatal(err)
	}

	info, err := Stat(p)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", info.FileCount)
	}
	if info.TotalSize != 8 {
		t.Errorf("TotalSize = %d, want 8", info.TotalSize)
	}
}

func TestStat_Absent(t *testing.T) {
	p := Resolve(t.TempDir(), "merged", "PROJ-404")
	if _, err := Stat(p); !errors.Is(err, ErrNotFound) {
		t.Errorf("Stat() error = %v, want ErrNotFound", err)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
