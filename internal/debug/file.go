package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables file logging.
const EnvVar = "GUI_DEBUG"

var (
	logFile *os.File
	mu      sync.Mutex
)

func initFromEnv() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	if err := Init(path); err != nil {
		fmt.Fprintf(os.Stderr, "gui: %v\n", err)
	}
}

// Init opens path for appending and installs a debug-level text logger that
// writes to it. An empty path means "debug.log" in the working directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = "debug.log"
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return nil
}

// Close closes the log file opened by Init and restores the silent logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	SetLogger(nil)
	return err
}
