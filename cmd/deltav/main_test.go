package main_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deltav.dev/deltav/testhelpers"
)

func TestMain(m *testing.M) {
	testhelpers.TestMain(m, nil)
}

func TestCalc(t *testing.T) {
	t.Run("stage flags", func(t *testing.T) {
		res := testhelpers.RunBinary(t, "", "calc", "-s", "1000,200,250", "-s", "300,50,300")
		testhelpers.ExpectSuccess(t, res)
		testhelpers.ExpectLines(t, res.Stdout,
			"Stage 1: 2342.59 m/s",
			"Stage 2: 5271.35 m/s",
			"Total Δv: 7613.94 m/s",
		)
		require.Empty(t, res.Stderr)
	})

	t.Run("stages piped on stdin", func(t *testing.T) {
		res := testhelpers.RunBinary(t, "1000,200,250\n300,50,300\n", "calc")
		testhelpers.ExpectSuccess(t, res)
		require.Contains(t, res.Stdout, "Total Δv: 7613.94 m/s")
	})

	t.Run("validation failure exits 1 with only the status line", func(t *testing.T) {
		res := testhelpers.RunBinary(t, "", "calc", "-s", "100,150,300")
		testhelpers.ExpectFailure(t, res)
		testhelpers.ExpectLines(t, res.Stdout, "Error: Wet mass <= Dry mass in Stage 1")
		require.Empty(t, res.Stderr)
	})

	t.Run("bad flag value is reported on stderr", func(t *testing.T) {
		res := testhelpers.RunBinary(t, "", "calc", "-s", "100,150")
		testhelpers.ExpectFailure(t, res)
		require.Contains(t, res.Stderr, "Error: invalid --stage")
	})
}

func TestInteractiveWithoutTerminal(t *testing.T) {
	res := testhelpers.RunBinary(t, "")
	testhelpers.ExpectSuccess(t, res)
	require.Contains(t, res.Stdout, "deltav calc")
}

func TestConfigList(t *testing.T) {
	res := testhelpers.RunBinary(t, "", "config", "list")
	testhelpers.ExpectSuccess(t, res)
	require.Contains(t, res.Stdout, "chart.height = 12")
}
