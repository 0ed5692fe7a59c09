// Package scenario provides a high-level test scenario that combines a runtime
// Context and a calculator Session to provide a terse API for tests.
package scenario

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"deltav.dev/deltav/internal/actions"
	"deltav.dev/deltav/internal/config"
	"deltav.dev/deltav/internal/runtime"
	"deltav.dev/deltav/internal/stage"
)

// Scenario represents a calculator session whose output is captured
type Scenario struct {
	T       *testing.T
	Context *runtime.Context
	Session *actions.Session
	Out     *bytes.Buffer
	Last    actions.View
}

// NewScenario creates a Scenario with no stages and the default config.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv.
func NewScenario(t *testing.T) *Scenario {
	t.Helper()

	t.Setenv("DELTAV_NON_INTERACTIVE", "true")
	t.Setenv("DELTAV_CONFIG", filepath.Join(t.TempDir(), "config.toml"))

	out := &bytes.Buffer{}
	ctx := runtime.NewContext(config.DefaultConfig(), out)
	t.Cleanup(func() { _ = ctx.Close() })

	return &Scenario{
		T:       t,
		Context: ctx,
		Session: ctx.NewSession(0),
		Out:     out,
	}
}

// Dispatch applies an action and records the resulting view
func (s *Scenario) Dispatch(a actions.Action) *Scenario {
	s.T.Helper()
	s.Last = s.Session.Dispatch(a)
	return s
}

// WithStage appends a stage and fills in its fields
func (s *Scenario) WithStage(wet, dry, isp string) *Scenario {
	s.T.Helper()
	s.Dispatch(actions.NewAddStage())
	id := s.Last.Stages[len(s.Last.Stages)-1].ID
	for f, value := range map[stage.Field]string{
		stage.FieldWet: wet,
		stage.FieldDry: dry,
		stage.FieldIsp: isp,
	} {
		s.Dispatch(actions.NewSetField(id, f, value))
		require.NoError(s.T, s.Last.Err)
	}
	return s
}

// StageID returns the id of the stage at 1-based position num
func (s *Scenario) StageID(num int) stage.ID {
	s.T.Helper()
	ids := s.Session.Stages().IDs()
	require.GreaterOrEqual(s.T, len(ids), num, "no stage %d", num)
	return ids[num-1]
}

// Calculate dispatches a calculation
func (s *Scenario) Calculate() *Scenario {
	s.T.Helper()
	return s.Dispatch(actions.NewCalculate())
}

// ExpectStatus asserts the current status line
func (s *Scenario) ExpectStatus(expected string) *Scenario {
	s.T.Helper()
	require.Equal(s.T, expected, s.Session.Status())
	return s
}

// ExpectTotal asserts the status line shows total delta-v
func (s *Scenario) ExpectTotal(total float64) *Scenario {
	s.T.Helper()
	return s.ExpectStatus(actions.FormatTotal(total))
}

// ExpectStageDeltaV asserts the per-stage breakdown of the last successful result
func (s *Scenario) ExpectStageDeltaV(expected ...float64) *Scenario {
	s.T.Helper()
	res, ok := s.Session.LastResult()
	require.True(s.T, ok, "no successful calculation")
	require.Len(s.T, res.StageDeltaV, len(expected))
	for i, dv := range expected {
		require.InDelta(s.T, dv, res.StageDeltaV[i], 0.005, fmt.Sprintf("stage %d", i+1))
	}
	return s
}
