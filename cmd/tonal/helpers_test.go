package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTheme = `{
  "color": {
    "primary": ["#111111", "#222222", "#333333", "#444444", "#555555"],
    "accent": ["#ff0000", "#ee0000"]
  },
  "button": {
    "background": "primary|-1",
    "border": "1px solid accent|1",
    "radius": 4
  },
  "zIndex": {"base": 100, "step": 5}
}`

// useWorkingDir points settings discovery at dir for the duration of the test.
func useWorkingDir(t *testing.T, dir string) {
	t.Helper()

	original := workingDir
	workingDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { workingDir = original })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeTheme(t *testing.T) string {
	t.Helper()
	return writeFile(t, t.TempDir(), "theme.json", testTheme)
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	useWorkingDir(t, t.TempDir())

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
