package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger: timestamped lines on w, filtered at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
}

// timer logs the duration of one stage of a command.
type timer struct {
	logger *log.Logger
	stage  string
	start  time.Time
}

func startTimer(l *log.Logger, stage string) *timer {
	return &timer{logger: l, stage: stage, start: time.Now()}
}

// stop logs "<stage> finished" with the elapsed time followed by keyvals, and
// returns the elapsed time.
func (t *timer) stop(keyvals ...any) time.Duration {
	d := time.Since(t.start)
	t.logger.Info(t.stage+" finished", append([]any{"elapsed", d.Round(time.Millisecond)}, keyvals...)...)
	return d
}
