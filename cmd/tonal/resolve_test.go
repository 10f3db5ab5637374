package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveCommand_PrintsOneValuePerLine(t *testing.T) {
	path := writeTheme(t)

	stdout, _, err := executeCommand(t, "--theme", path, "resolve", "primary", "primary|1", "1px solid primary|-2", "unknown")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Equal(t, []string{"#333333", "#444444", "1px solid #111111", "unknown"}, lines)
}

func TestResolveCommand_JSON(t *testing.T) {
	path := writeTheme(t)

	stdout, _, err := executeCommand(t, "--theme", path, "--json", "resolve", "accent|1")
	require.NoError(t, err)

	var results []resolveResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	require.Equal(t, []resolveResult{{Value: "accent|1", Resolved: "#ee0000"}}, results)
}

func TestResolveCommand_StrictModeFailsOnUnknownColor(t *testing.T) {
	path := writeTheme(t)

	_, _, err := executeCommand(t, "--theme", path, "--mode", "strict", "resolve", "missing|1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid color value")
}

func TestResolveCommand_ProductionModeKeepsUnknownReference(t *testing.T) {
	path := writeTheme(t)

	stdout, _, err := executeCommand(t, "--theme", path, "--mode", "production", "resolve", "missing|1")
	require.NoError(t, err)
	require.Equal(t, "missing|1\n", stdout)
}

func TestResolveCommand_RequiresTheme(t *testing.T) {
	_, _, err := executeCommand(t, "resolve", "primary")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no theme configured")
}

func TestResolveCommand_ReadsProjectSettings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "theme.json", testTheme)
	writeFile(t, dir, ".tonal.yaml", "theme: theme.json\nmode: strict\n")

	root := newRootCmd()
	useWorkingDir(t, dir)
	stdout := &strings.Builder{}
	root.SetOut(stdout)
	root.SetErr(&strings.Builder{})
	root.SetArgs([]string{"resolve", "primary|2"})

	require.NoError(t, root.Execute())
	require.Equal(t, "#555555\n", stdout.String())
}

func TestResolveCommand_AppliesOverlays(t *testing.T) {
	path := writeTheme(t)
	overlay := writeFile(t, t.TempDir(), "dark.yaml", "color:\n  accent: ['#00ff00', '#00ee00']\n  muted: ['#888888']\n")

	stdout, _, err := executeCommand(t, "--theme", path, "--overlay", overlay, "resolve", "accent", "muted", "primary")
	require.NoError(t, err)
	require.Equal(t, "#00ff00\n#888888\n#333333\n", stdout)
}
