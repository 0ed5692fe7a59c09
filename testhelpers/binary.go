// Package testhelpers provides shared test utilities, including a deltav
// binary built once per test package and assertions on its output.
package testhelpers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// SetSharedBinaryPath sets the shared binary path for tests.
func SetSharedBinaryPath(path string) {
	sharedBinaryPath = path
}

// GetSharedBinaryPath returns the shared binary path, building it on first use
// when TestMain did not set one.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		if sharedBinaryPath != "" {
			return
		}
		tmpDir, err := os.MkdirTemp("", "deltav-test-binary-*")
		if err != nil {
			binaryErr = fmt.Errorf("failed to create temp directory: %w", err)
			return
		}
		sharedBinaryPath, binaryErr = buildBinary(tmpDir)
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// Binary returns the deltav binary, failing the test if it could not be built
func Binary(t *testing.T) string {
	t.Helper()
	path := GetSharedBinaryPath()
	if path == "" {
		if err := GetBinaryError(); err != nil {
			t.Fatalf("failed to build deltav binary: %v", err)
		}
		t.Fatal("deltav binary not built")
	}
	return path
}

// buildBinary builds ./cmd/deltav into dir and returns the binary path
func buildBinary(dir string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	binaryPath := filepath.Join(dir, "deltav")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/deltav")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}
	return binaryPath, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// TestMain builds the deltav binary once, runs the package's tests and removes it.
func TestMain(m *testing.M, cleanup func()) {
	tmpDir, err := os.MkdirTemp("", "deltav-test-binary-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create temp directory: %v\n", err)
		os.Exit(1)
	}

	binaryPath, err := buildBinary(tmpDir)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		fmt.Fprintf(os.Stderr, "Failed to build deltav binary: %v\n", err)
		os.Exit(1)
	}
	SetSharedBinaryPath(binaryPath)

	code := m.Run()

	_ = os.RemoveAll(tmpDir)
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

// Result is the outcome of one binary invocation
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunBinary runs the deltav binary non-interactively with an isolated home directory.
// stdin may be empty.
func RunBinary(t *testing.T, stdin string, args ...string) Result {
	t.Helper()

	home := t.TempDir()
	cmd := exec.Command(Binary(t), args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"DELTAV_NON_INTERACTIVE=1",
		"DELTAV_CONFIG="+filepath.Join(home, "config.toml"),
		"DELTAV_LOG_FILE="+filepath.Join(home, "deltav.log"),
	)
	cmd.Stdin = bytes.NewBufferString(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run deltav: %v", err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}
