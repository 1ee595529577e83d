package util

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDataDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	if got := DataDir("tankview"); got != filepath.Join("/tmp/xdg", "tankview") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestDocumentsDirFromUserDirs(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "")
	if got := userDir("XDG_DESKTOP_DIR=\"$HOME/Desk\"\nXDG_DOCUMENTS_DIR=\"$HOME/Docs\"\n", "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("unexpected user dir %q", got)
	}
}

func TestReportPath(t *testing.T) {
	ts := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	got := ReportPath("/tmp/r", "tankview", ts)
	if !strings.HasSuffix(got, "tankview_20261019_083000.pdf") {
		t.Fatalf("unexpected report path %q", got)
	}
}
