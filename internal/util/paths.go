package util

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DataDir is $XDG_DATA_HOME/app, falling back to ~/.local/share/app.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", app)
	}
	return filepath.Join(home, ".local", "share", app)
}

// ReportsDir is where PDF snapshots go unless configured otherwise.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// ReportPath names a snapshot file inside dir, stamped with t.
func ReportPath(dir, app string, t time.Time) string {
	return filepath.Join(dir, app+"_"+t.Format("20060102_150405")+".pdf")
}

func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return expandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := userDir(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return expandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

func userDir(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		value, ok := strings.CutPrefix(strings.TrimSpace(line), key+"=")
		if ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

func expandHome(path string) string {
	if !strings.Contains(path, "$HOME") {
		return path
	}
	home, _ := os.UserHomeDir()
	return strings.ReplaceAll(path, "$HOME", home)
}
