// Package runtime provides a context type that holds the config and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"fmt"
	"io"

	"deltav.dev/deltav/internal/actions"
	"deltav.dev/deltav/internal/chart"
	"deltav.dev/deltav/internal/config"
	"deltav.dev/deltav/internal/tui"
)

// Context provides access to config and output for commands
type Context struct {
	Config *config.Config
	Splog  *tui.Splog
}

// NewContext creates a context with console-only logging to out
func NewContext(cfg *config.Config, out io.Writer) *Context {
	splog := tui.NewSplogWithWriter(out)
	return &Context{
		Config: cfg,
		Splog:  splog,
	}
}

// NewContextWithLogFile creates a context that also logs to a rotating file.
// An empty cfg.Log.File falls back to tui.GetLogFilePath().
func NewContextWithLogFile(cfg *config.Config, out io.Writer) (*Context, error) {
	logPath := cfg.Log.File
	if logPath == "" {
		logPath = tui.GetLogFilePath()
	}

	splog, err := tui.NewSplogWithConfig(out, logPath, tui.LogOptions{
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	return &Context{
		Config: cfg,
		Splog:  splog,
	}, nil
}

// ChartOptions returns the configured chart geometry
func (c *Context) ChartOptions() chart.Options {
	return chart.Options{
		Height:   c.Config.Chart.Height,
		BarWidth: c.Config.Chart.BarWidth,
	}
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}

// NewSession starts a calculator session with initialStages empty stages.
// A negative count uses the configured session.initial_stages.
func (c *Context) NewSession(initialStages int) *actions.Session {
	if initialStages < 0 {
		initialStages = c.Config.Session.InitialStages
	}
	return actions.NewSession(actions.SessionOptions{
		InitialStages: initialStages,
		Splog:         c.Splog,
	})
}
