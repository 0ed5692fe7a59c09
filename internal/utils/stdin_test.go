package utils

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadFromStdin(t *testing.T) {
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r

	go func() {
		_, _ = w.Write([]byte("1000,200,250\n300,50,300\n\n"))
		_ = w.Close()
	}()

	text, err := ReadFromStdin()
	require.NoError(t, err)
	require.Equal(t, "1000,200,250\n300,50,300", text)
}

func TestReadFromStdin_EmptyFile(t *testing.T) {
	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	os.Stdin = f

	text, err := ReadFromStdin()
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestLines(t *testing.T) {
	text := `
# first stage
1000,200,250

  300,50,300  
`
	require.Equal(t, []string{"1000,200,250", "300,50,300"}, Lines(text))
	require.Empty(t, Lines(""))
}
