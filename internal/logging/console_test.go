package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	cblog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		payload := make(map[string]interface{})
		require.NoError(t, json.Unmarshal([]byte(line), &payload), "line %q", line)
		out = append(out, payload)
	}
	return out
}

func TestConsoleIncludesComponentAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console, err := New(Options{Writer: &buf, Formatter: cblog.JSONFormatter, Component: "resolver"})
	require.NoError(t, err)

	console.Warn("invalid color value", "mode", "debug")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "invalid color value", lines[0]["msg"])
	require.Equal(t, "resolver", lines[0]["component"])
	require.Equal(t, "debug", lines[0]["mode"])
	require.Equal(t, "warn", lines[0]["level"])
}

func TestConsoleWithOverridesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console, err := New(Options{Writer: &buf, Formatter: cblog.JSONFormatter, Component: "resolver"})
	require.NoError(t, err)

	derived := console.With("component", "lint", "theme", "base.json")
	derived.Info("checked")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "lint", lines[0]["component"])
	require.Equal(t, "base.json", lines[0]["theme"])
}

func TestConsoleRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console, err := New(Options{Writer: &buf, Level: "warn", Formatter: cblog.JSONFormatter})
	require.NoError(t, err)

	console.Debug("hidden")
	console.Info("hidden")
	console.Error("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "shown", lines[0]["msg"])
}

func TestConsoleRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestConsoleReceivesDebugModeDiagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	console, err := New(Options{Writer: &buf, Formatter: cblog.JSONFormatter, Component: "resolver"})
	require.NoError(t, err)

	doc := theme.NewDocument(map[string]any{"color": map[string]any{"primary": []any{"#000000"}}})
	r, err := theme.New(doc, theme.WithMode(theme.ModeDebug), theme.WithConsole(console))
	require.NoError(t, err)

	got, err := r.ResolveColor("ghost|1")
	require.NoError(t, err)
	require.Equal(t, "ghost|1", got)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	require.Equal(t, "invalid color value ghost|1", lines[0]["msg"])
	require.Equal(t, "debug", lines[0]["mode"])
}

func TestMergeFieldsKeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := mergeFields([]interface{}{"a", 1, "b", 2}, []interface{}{"b", 3, 4, "skip", "c", 5})
	require.Equal(t, []interface{}{"a", 1, "b", 3, "c", 5}, got)
}
