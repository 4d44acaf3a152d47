package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		debug bool
		info  bool
	}{
		{"info", LogInfo, false, true},
		{"debug", LogDebug, true, true},
		{"error", log.ErrorLevel, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)

			l.Debug("moved table", "id", "table-1")
			if got := strings.Contains(buf.String(), "moved table"); got != tt.debug {
				t.Errorf("debug logged = %v, want %v", got, tt.debug)
			}
			l.Info("saved snapshot")
			if got := strings.Contains(buf.String(), "saved snapshot"); got != tt.info {
				t.Errorf("info logged = %v, want %v", got, tt.info)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected output after SetLogLevel: %q", out)
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	tm := startTimer(newLogger(&buf, LogInfo), "render")
	time.Sleep(5 * time.Millisecond)

	if d := tm.stop("plan", "terraza.json"); d < 5*time.Millisecond {
		t.Errorf("elapsed = %v, want at least 5ms", d)
	}
	out := buf.String()
	for _, want := range []string{"render finished", "elapsed=", "plan=terraza.json"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
