package gui

import (
	"os"
	"testing"

	"github.com/grindlemire/go-gui/internal/debug"
)

func TestMain(m *testing.M) {
	// Tests install their own loggers; a GUI_DEBUG sink from the
	// environment would interleave with them.
	_ = debug.Close()
	os.Exit(m.Run())
}
