package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// withConfig points the commands at a temp config using baseDir for
// bundles and restores the previous config path afterwards.
func withConfig(t *testing.T, baseDir string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "logs:\n  base_dir: " + baseDir + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	prev := ConfigPath
	ConfigPath = path
	t.Cleanup(func() { ConfigPath = prev })
}

// runCommand executes a command with args and returns its combined output.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// writeBundle lays down an extracted bundle for a ticket.
func writeBundle(t *testing.T, baseDir, ticketID string, logs map[string]string) {
	t.Helper()
	extractDir := filepath.Join(baseDir, "logs_"+ticketID, "merged")
	if err := os.MkdirAll(extractDir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range logs {
		if err := os.WriteFile(filepath.Join(extractDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestNewDownloadCommand(t *testing.T) {
	cmd := NewDownloadCommand()

	if cmd.Use != "download <ticket-id>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if cmd.Flags().Lookup("all") == nil {
		t.Error("Missing flag: all")
	}
}

func TestNewFindCommand(t *testing.T) {
	cmd := NewFindCommand()

	if cmd.Use != "find <ticket-id> <request-id>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if cmd.Flags().Lookup("copy") == nil {
		t.Error("Missing flag: copy")
	}
}

func TestNewCleanCommand(t *testing.T) {
	cmd := NewCleanCommand()

	if cmd.Use != "clean [ticket-id]" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	if cmd.Flags().Lookup("all") == nil {
		t.Error("Missing flag: all")
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
	out, err := runCommand(t, cmd)
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "ticketlog") {
		t.Errorf("version output = %q", out)
	}
}

func TestRunFind_Match(t *testing.T) {
	baseDir := t.TempDir()
	withConfig(t, baseDir)
	writeBundle(t, baseDir, "PROJ-9", map[string]string{
		"api.log": "💡 #31 GET https://api.test/v1/users\nresponse: {\"users\": []}\n",
	})

	out, err := runCommand(t, NewFindCommand(), "PROJ-9", "31")
	if err != nil {
		t.Fatalf("find error = %v", err)
	}
	if !strings.Contains(out, "#31") || !strings.Contains(out, `{"users": []}`) {
		t.Errorf("find output = %q", out)
	}
}

func TestRunFind_NotFoundIsSuccess(t *testing.T) {
	baseDir := t.TempDir()
	withConfig(t, baseDir)
	writeBundle(t, baseDir, "PROJ-9", map[string]string{
		"api.log": "💡 #1 GET https://api.test/a\n",
	})

	out, err := runCommand(t, NewFindCommand(), "PROJ-9", "999")
	if err != nil {
		t.Fatalf("find error = %v, want not-found success", err)
	}
	if !strings.Contains(out, "No entry found") {
		t.Errorf("find output = %q", out)
	}
}

func TestRunFind_BundleNotDownloaded(t *testing.T) {
	withConfig(t, t.TempDir())

	_, err := runCommand(t, NewFindCommand(), "PROJ-404", "1")
	if err == nil {
		t.Fatal("find succeeded without a downloaded bundle")
	}
	if !strings.Contains(err.Error(), "download") {
		t.Errorf("Error = %v, want a pointer to run download", err)
	}
}

func TestRunSearch_MatchesAcrossFiles(t *testing.T) {
	baseDir := t.TempDir()
	withConfig(t, baseDir)
	writeBundle(t, baseDir, "PROJ-9", map[string]string{
		"api.log":         "💡 #1 GET https://api.test/a\nresponse: Timeout waiting\n",
		"flutter-api.log": "💡 #8 GET https://api.test/b\nTIMEOUT again\n",
	})

	out, err := runCommand(t, NewSearchCommand(), "PROJ-9", "timeout")
	if err != nil {
		t.Fatalf("search error = %v", err)
	}
	for _, want := range []string{"#1", "#8", "2 matching"} {
		if !strings.Contains(out, want) {
			t.Errorf("search output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSearch_EmptyIsSuccess(t *testing.T) {
	baseDir := t.TempDir()
	withConfig(t, baseDir)
	writeBundle(t, baseDir, "PROJ-9", map[string]string{
		"api.log": "💡 #1 GET https://api.test/a\n",
	})

	out, err := runCommand(t, NewSearchCommand(), "PROJ-9", "absent-keyword")
	if err != nil {
		t.Fatalf("search error = %v, want empty-result success", err)
	}
	if !strings.Contains(out, "No entries matching") {
		t.Errorf("search output = %q", out)
	}
}

func TestRunClean_RemovesBundle(t *testing.T) {
	baseDir := t.TempDir()
	withConfig(t, baseDir)
	writeBundle(t, baseDir, "PROJ-9", map[string]string{"api.log": "x"})

	out, err := runCommand(t, NewCleanCommand(), "PROJ-9")
	if err != nil {
		t.Fatalf("clean error = %v", err)
	}
	if !strings.Contains(out, "Removed bundle for PROJ-9") {
		t.Errorf("clean output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(baseDir, "logs_PROJ-9")); !os.IsNotExist(err) {
		t.Error("Bundle directory still present after clean")
	}
}

func TestRunClean_AbsentBundleIsSuccess(t *testing.T) {
	withConfig(t, t.TempDir())

	out, err := runCommand(t, NewCleanCommand(), "PROJ-404")
	if err != nil {
		t.Fatalf("clean error = %v, want no-op success", err)
	}
	if !strings.Contains(out, "nothing to clean") {
		t.Errorf("clean output = %q", out)
	}
}

func TestRunInfo_AbsentBundle(t *testing.T) {
	withConfig(t, t.TempDir())

	out, err := runCommand(t, NewInfoCommand(), "PROJ-404")
	if err != nil {
		t.Fatalf("info error = %v", err)
	}
	if !strings.Contains(out, "No bundle") {
		t.Errorf("info output = %q", out)
	}
}

func TestRunDownload_RequiresTrackerConfig(t *testing.T) {
	withConfig(t, t.TempDir())

	_, err := runCommand(t, NewDownloadCommand(), "PROJ-1")
	if err == nil {
		t.Fatal("download succeeded without tracker settings")
	}
	if !strings.Contains(err.Error(), "tracker.url") {
		t.Errorf("Error = %v, want missing tracker.url", err)
	}
}
