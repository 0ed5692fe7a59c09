package actions

import (
	"fmt"

	"deltav.dev/deltav/internal/chart"
	"deltav.dev/deltav/internal/engine"
	"deltav.dev/deltav/internal/stage"
	"deltav.dev/deltav/internal/tui"
)

// Status texts shown to the user
const (
	StatusIdle          = "Total Δv: "
	StatusCalculateMore = "Calculate delta-V first!"
)

// FormatTotal formats a successful result for the status line
func FormatTotal(total float64) string {
	return fmt.Sprintf("Total Δv: %.2f m/s", total)
}

// FormatError formats a calculation failure for the status line
func FormatError(err error) string {
	return fmt.Sprintf("Error: %s", err.Error())
}

// View is a snapshot of the session for the presentation layer to render
type View struct {
	Stages []stage.Entry
	Status string
	// Result is the last successful calculation, nil before the first one
	Result *engine.Result
	// Chart is set only in response to a successful Plot
	Chart *chart.Data
	// Err is the failure of the last action, if any
	Err error
}

// Session holds the calculator state for one user session.
// It is not safe for concurrent use; dispatch from a single goroutine.
type Session struct {
	stages *stage.Sequence
	last   *engine.Result
	status string
	splog  *tui.Splog
}

// SessionOptions configures a new session
type SessionOptions struct {
	InitialStages int
	Sequence      *stage.Sequence // defaults to stage.NewSequence()
	Splog         *tui.Splog      // defaults to a console logger
}

// NewSession creates a session with opts.InitialStages empty stages
func NewSession(opts SessionOptions) *Session {
	seq := opts.Sequence
	if seq == nil {
		seq = stage.NewSequence()
	}
	splog := opts.Splog
	if splog == nil {
		splog = tui.NewSplog()
	}

	s := &Session{
		stages: seq,
		status: StatusIdle,
		splog:  splog,
	}
	for i := 0; i < opts.InitialStages; i++ {
		s.stages.Append()
	}
	return s
}

// Stages returns the underlying sequence for read access
func (s *Session) Stages() *stage.Sequence {
	return s.stages
}

// Status returns the current status line
func (s *Session) Status() string {
	return s.status
}

// LastResult returns the last successful calculation
func (s *Session) LastResult() (engine.Result, bool) {
	if s.last == nil {
		return engine.Result{}, false
	}
	return *s.last, true
}

// Dispatch applies one action and returns the resulting view
func (s *Session) Dispatch(a Action) View {
	s.splog.Debug("dispatch %s", a)

	var (
		err  error
		data *chart.Data
	)

	switch a.Kind {
	case AddStage:
		id := s.stages.Append()
		s.splog.Debug("added stage %s", id)

	case RemoveStage:
		if !s.stages.Remove(a.StageID) {
			s.splog.Debug("remove: stage %s not found", a.StageID)
		}

	case SetField:
		err = s.stages.Set(a.StageID, a.Field, a.Value)

	case MoveStage:
		s.stages.Move(a.StageID, a.Offset)

	case Calculate:
		err = s.calculate()

	case Plot:
		data = s.plot()

	default:
		err = fmt.Errorf("unknown action: %s", a.Kind)
	}

	if err != nil {
		s.splog.Debug("%s failed: %v", a.Kind, err)
	}
	return s.view(data, err)
}

func (s *Session) calculate() error {
	result, err := engine.Calculate(s.stages.Raw())
	if err != nil {
		s.status = FormatError(err)
		return err
	}

	s.last = &result
	s.status = FormatTotal(result.Total)
	s.splog.Debug("calculated %d stages, total %.2f m/s", result.Len(), result.Total)
	return nil
}

func (s *Session) plot() *chart.Data {
	if s.last == nil {
		s.status = StatusCalculateMore
		return nil
	}
	data := chart.FromResult(*s.last)
	return &data
}

func (s *Session) view(data *chart.Data, err error) View {
	v := View{
		Stages: s.stages.Entries(),
		Status: s.status,
		Chart:  data,
		Err:    err,
	}
	if s.last != nil {
		r := *s.last
		v.Result = &r
	}
	return v
}
