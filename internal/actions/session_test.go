package actions_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"deltav.dev/deltav/internal/actions"
	"deltav.dev/deltav/internal/chart"
	"deltav.dev/deltav/internal/errors"
	"deltav.dev/deltav/internal/stage"
	"deltav.dev/deltav/internal/tui"
)

func newTestSession(t *testing.T, initialStages int) *actions.Session {
	t.Helper()
	n := 0
	return actions.NewSession(actions.SessionOptions{
		InitialStages: initialStages,
		Sequence: stage.NewSequenceWithIDs(func() stage.ID {
			n++
			return stage.ID(fmt.Sprintf("s%d", n))
		}),
		Splog: tui.NewSplogWithWriter(&bytes.Buffer{}),
	})
}

func fill(t *testing.T, s *actions.Session, id stage.ID, wet, dry, isp string) {
	t.Helper()
	for field, value := range map[stage.Field]string{
		stage.FieldWet: wet,
		stage.FieldDry: dry,
		stage.FieldIsp: isp,
	} {
		v := s.Dispatch(actions.NewSetField(id, field, value))
		require.NoError(t, v.Err)
	}
}

func TestSession_New(t *testing.T) {
	s := newTestSession(t, 1)
	require.Equal(t, 1, s.Stages().Len())
	require.Equal(t, actions.StatusIdle, s.Status())

	_, ok := s.LastResult()
	require.False(t, ok)
}

func TestSession_AddRemove(t *testing.T) {
	s := newTestSession(t, 1)

	v := s.Dispatch(actions.NewAddStage())
	v = s.Dispatch(actions.NewAddStage())
	require.Len(t, v.Stages, 3)

	middle := v.Stages[1].ID
	v = s.Dispatch(actions.NewRemoveStage(middle))
	require.NoError(t, v.Err)
	require.Len(t, v.Stages, 2)
	require.Equal(t, stage.ID("s1"), v.Stages[0].ID)
	require.Equal(t, stage.ID("s3"), v.Stages[1].ID)
	require.Equal(t, 1, v.Stages[0].Number)
	require.Equal(t, 2, v.Stages[1].Number)

	// Unknown id leaves the sequence alone
	v = s.Dispatch(actions.NewRemoveStage("missing"))
	require.NoError(t, v.Err)
	require.Len(t, v.Stages, 2)
}

func TestSession_SetFieldUnknownStage(t *testing.T) {
	s := newTestSession(t, 1)
	v := s.Dispatch(actions.NewSetField("missing", stage.FieldWet, "1"))
	require.ErrorIs(t, v.Err, errors.ErrStageNotFound)
}

func TestSession_Calculate(t *testing.T) {
	t.Run("success shows total to two decimals", func(t *testing.T) {
		s := newTestSession(t, 2)
		ids := s.Stages().IDs()
		fill(t, s, ids[0], "1000", "200", "250")
		fill(t, s, ids[1], "300", "50", "300")

		v := s.Dispatch(actions.NewCalculate())
		require.NoError(t, v.Err)
		require.Equal(t, "Total Δv: 7613.94 m/s", v.Status)
		require.NotNil(t, v.Result)
		require.Len(t, v.Result.StageDeltaV, 2)
	})

	t.Run("validation failure is shown verbatim", func(t *testing.T) {
		s := newTestSession(t, 1)
		fill(t, s, s.Stages().IDs()[0], "100", "150", "300")

		v := s.Dispatch(actions.NewCalculate())
		require.ErrorIs(t, v.Err, errors.ErrInvalidStage)
		require.Equal(t, "Error: Wet mass <= Dry mass in Stage 1", v.Status)
		require.Nil(t, v.Result)
	})

	t.Run("empty sequence", func(t *testing.T) {
		s := newTestSession(t, 0)
		v := s.Dispatch(actions.NewCalculate())
		require.ErrorIs(t, v.Err, errors.ErrEmptySequence)
		require.Equal(t, "Error: No stages added", v.Status)
	})

	t.Run("unfilled stage is a parse error", func(t *testing.T) {
		s := newTestSession(t, 1)
		v := s.Dispatch(actions.NewCalculate())
		require.ErrorIs(t, v.Err, errors.ErrParse)
		require.Contains(t, v.Status, "Error: ")
	})

	t.Run("failure keeps the previous result", func(t *testing.T) {
		s := newTestSession(t, 1)
		id := s.Stages().IDs()[0]
		fill(t, s, id, "500", "100", "320")
		v := s.Dispatch(actions.NewCalculate())
		require.NoError(t, v.Err)
		first := *v.Result

		s.Dispatch(actions.NewSetField(id, stage.FieldIsp, "0"))
		v = s.Dispatch(actions.NewCalculate())
		require.Error(t, v.Err)
		require.Equal(t, "Error: Invalid Isp in Stage 1", v.Status)

		last, ok := s.LastResult()
		require.True(t, ok)
		require.Equal(t, first, last)
	})
}

func TestSession_Plot(t *testing.T) {
	t.Run("asks for a calculation first", func(t *testing.T) {
		s := newTestSession(t, 1)
		v := s.Dispatch(actions.NewPlot())
		require.Nil(t, v.Chart)
		require.Equal(t, actions.StatusCalculateMore, v.Status)
	})

	t.Run("charts the last result", func(t *testing.T) {
		s := newTestSession(t, 2)
		ids := s.Stages().IDs()
		fill(t, s, ids[0], "1000", "200", "250")
		fill(t, s, ids[1], "300", "50", "300")
		s.Dispatch(actions.NewCalculate())

		v := s.Dispatch(actions.NewPlot())
		require.NotNil(t, v.Chart)
		require.Len(t, v.Chart.Bars, 3)
		require.Equal(t, "Stage 1", v.Chart.Bars[0].Label)
		require.Equal(t, chart.TotalLabel, v.Chart.Bars[2].Label)
		require.InDelta(t, v.Result.Total, v.Chart.Bars[2].Value, 1e-9)
		require.Equal(t, "Total Δv: 7613.94 m/s", v.Status)
	})
}

func TestSession_MoveChangesBreakdown(t *testing.T) {
	s := newTestSession(t, 2)
	ids := s.Stages().IDs()
	fill(t, s, ids[0], "1000", "200", "250")
	fill(t, s, ids[1], "300", "50", "300")

	before := s.Dispatch(actions.NewCalculate()).Result

	v := s.Dispatch(actions.NewMoveStage(ids[1], -1))
	require.Equal(t, []stage.ID{ids[1], ids[0]}, []stage.ID{v.Stages[0].ID, v.Stages[1].ID})

	after := s.Dispatch(actions.NewCalculate()).Result
	require.NotEqual(t, before.StageDeltaV, after.StageDeltaV)
}

func TestAction_String(t *testing.T) {
	require.Equal(t, "calculate", actions.NewCalculate().String())
	require.Equal(t, "remove-stage s1", actions.NewRemoveStage("s1").String())
	require.Equal(t, "move-stage s2 -1", actions.NewMoveStage("s2", -1).String())
	require.Equal(t, `set-field s1 Isp (s):="300"`, actions.NewSetField("s1", stage.FieldIsp, "300").String())
}
