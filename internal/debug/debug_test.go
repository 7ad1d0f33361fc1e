package debug

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_DefaultDiscards(t *testing.T) {
	SetLogger(nil)
	if Enabled(slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	defer SetLogger(nil)

	Logger().Debug("hidden")
	Logger().Warn("shown", "node", 7)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "node=7") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gui.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Logger().Debug("frame", "patches", 3)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "patches=3") {
		t.Errorf("log file = %q, want it to contain patches=3", data)
	}
	if Enabled(slog.LevelError) {
		t.Error("Close() should restore the silent logger")
	}
}
