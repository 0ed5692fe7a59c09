package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"deltav.dev/deltav/internal/actions"
	"deltav.dev/deltav/internal/chart"
	"deltav.dev/deltav/internal/errors"
	"deltav.dev/deltav/internal/stage"
	"deltav.dev/deltav/testhelpers"
	"deltav.dev/deltav/testhelpers/scenario"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	readStdin = func() (string, error) { return "", nil }
}

// withStdin makes calc read text as piped stdin for the rest of the test
func withStdin(t *testing.T, text string) {
	t.Helper()
	old := readStdin
	readStdin = func() (string, error) { return text, nil }
	t.Cleanup(func() { readStdin = old })
}

// execute runs the root command in-process with an isolated config file
func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "config.toml")
	}

	var out bytes.Buffer
	cmd := NewRootCmd("test", "abc123", "today")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCalcCommand(t *testing.T) {
	t.Run("prints per-stage and total delta-v", func(t *testing.T) {
		out, err := execute(t, "", "calc", "--stage", "1000,200,250", "--stage", "300,50,300")
		require.NoError(t, err, out)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Equal(t, []string{
			"Stage 1: 2342.59 m/s",
			"Stage 2: 5271.35 m/s",
			"Total Δv: 7613.94 m/s",
		}, lines)
	})

	t.Run("plot draws the chart", func(t *testing.T) {
		out, err := execute(t, "", "calc", "-s", "1000,200,250", "-s", "300,50,300", "--plot")
		require.NoError(t, err, out)
		require.Contains(t, out, chart.Title)
		require.Contains(t, out, chart.YLabel)
		require.Contains(t, out, "7613.9")
	})

	t.Run("validation errors are shown as the status line", func(t *testing.T) {
		out, err := execute(t, "", "calc", "--stage", "100,150,300")
		require.ErrorIs(t, err, errors.ErrInvalidStage)
		require.Equal(t, "Error: Wet mass <= Dry mass in Stage 1\n", out)
	})

	t.Run("non-numeric field", func(t *testing.T) {
		out, err := execute(t, "", "calc", "--stage", "abc,150,300")
		require.ErrorIs(t, err, errors.ErrParse)
		require.True(t, strings.HasPrefix(out, "Error: "))
	})

	t.Run("no stages", func(t *testing.T) {
		out, err := execute(t, "", "calc")
		require.ErrorIs(t, err, errors.ErrEmptySequence)
		require.Equal(t, "Error: No stages added\n", out)
	})

	t.Run("stages from stdin", func(t *testing.T) {
		withStdin(t, "# booster\n1000,200,250\n\n300,50,300\n")
		out, err := execute(t, "", "calc")
		require.NoError(t, err, out)
		require.Contains(t, out, "Total Δv: 7613.94 m/s")
	})

	t.Run("example rocket", func(t *testing.T) {
		out, err := execute(t, "", "calc", "--example", "two-stage")
		require.NoError(t, err, out)
		require.Contains(t, out, "Stage 2: 5271.35 m/s")
		require.Contains(t, out, "Total Δv: 7613.94 m/s")
	})

	t.Run("example cannot be combined with stages", func(t *testing.T) {
		_, err := execute(t, "", "calc", "--example", "two-stage", "--stage", "1,0.5,100")
		require.Error(t, err)
	})

	t.Run("unknown example", func(t *testing.T) {
		_, err := execute(t, "", "calc", "--example", "nope")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown example")
	})

	t.Run("malformed stage flag", func(t *testing.T) {
		_, err := execute(t, "", "calc", "--stage", "1000,200")
		require.Error(t, err)
		require.Contains(t, err.Error(), "expected WET,DRY,ISP")
		require.False(t, errors.IsValidation(err))
	})
}

func TestReport(t *testing.T) {
	t.Run("prints breakdown then total", func(t *testing.T) {
		s := scenario.NewScenario(t).
			WithStage("1000", "200", "250").
			WithStage("300", "50", "300")

		require.NoError(t, report(s.Context, s.Session, false))
		testhelpers.ExpectLines(t, s.Out.String(),
			"Stage 1: 2342.59 m/s",
			"Stage 2: 5271.35 m/s",
			"Total Δv: 7613.94 m/s",
		)
		s.ExpectTotal(7613.94)
	})

	t.Run("failure keeps the previous result", func(t *testing.T) {
		s := scenario.NewScenario(t).WithStage("500", "100", "320")
		require.NoError(t, report(s.Context, s.Session, false))

		s.Dispatch(actions.NewSetField(s.StageID(1), stage.FieldWet, "50"))
		err := report(s.Context, s.Session, true)
		require.ErrorIs(t, err, errors.ErrInvalidStage)
		s.ExpectStatus("Error: Wet mass <= Dry mass in Stage 1").
			ExpectStageDeltaV(5050.62)
		require.NotContains(t, s.Out.String(), chart.Title)
	})
}

func TestParseStageSpec(t *testing.T) {
	r, err := parseStageSpec(" 1000 , 200,250 ")
	require.NoError(t, err)
	require.Equal(t, "1000", r.Wet)
	require.Equal(t, "200", r.Dry)
	require.Equal(t, "250", r.Isp)

	_, err = parseStageSpec("1,2,3,4")
	require.Error(t, err)
}

func TestConfigCommand(t *testing.T) {
	t.Run("get returns default when not set", func(t *testing.T) {
		out, err := execute(t, "", "config", "get", "chart.height")
		require.NoError(t, err)
		require.Equal(t, "12", strings.TrimSpace(out))
	})

	t.Run("set persists the value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deltav", "config.toml")

		out, err := execute(t, path, "config", "set", "chart.height", "16")
		require.NoError(t, err)
		require.Contains(t, out, "Set chart.height to: 16")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "height = 16")

		out, err = execute(t, path, "config", "get", "chart.height")
		require.NoError(t, err)
		require.Equal(t, "16", strings.TrimSpace(out))
	})

	t.Run("set rejects invalid values", func(t *testing.T) {
		_, err := execute(t, "", "config", "set", "chart.height", "0")
		require.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := execute(t, "", "config", "get", "chart.colour")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown configuration key")
	})

	t.Run("list shows every key", func(t *testing.T) {
		out, err := execute(t, "", "config", "list")
		require.NoError(t, err)
		require.Contains(t, out, "chart.bar_width = 9")
		require.Contains(t, out, "session.initial_stages = 1")
	})
}

func TestRootCommand(t *testing.T) {
	t.Run("without a terminal suggests calc", func(t *testing.T) {
		t.Setenv("DELTAV_NON_INTERACTIVE", "1")
		t.Setenv("DELTAV_LOG_FILE", filepath.Join(t.TempDir(), "deltav.log"))

		out, err := execute(t, "")
		require.NoError(t, err)
		require.Contains(t, out, "deltav calc")
	})

	t.Run("version", func(t *testing.T) {
		out, err := execute(t, "", "--version")
		require.NoError(t, err)
		require.Contains(t, out, "test (commit abc123")
	})
}

func TestWizardValidators(t *testing.T) {
	require.NoError(t, validateStageCount("3"))
	require.Error(t, validateStageCount("0"))
	require.Error(t, validateStageCount("21"))
	require.Error(t, validateStageCount("two"))

	require.NoError(t, validatePositiveNumber("250.5"))
	require.Error(t, validatePositiveNumber("0"))
	require.Error(t, validatePositiveNumber("abc"))

	questions := stageQuestions(2)
	require.Len(t, questions, 3)
	require.Equal(t, "wet", questions[0].Name)
}

func TestWizardRequiresTerminal(t *testing.T) {
	t.Setenv("DELTAV_NON_INTERACTIVE", "1")
	_, err := execute(t, "", "wizard")
	require.Error(t, err)
	require.Contains(t, err.Error(), "deltav calc")
}
