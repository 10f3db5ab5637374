package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnified_IdenticalContent(t *testing.T) {
	t.Parallel()

	require.Empty(t, Unified("a\nb\n", "a\nb\n", "before", "after"))
}

func TestUnified_LineChange(t *testing.T) {
	t.Parallel()

	before := "{\n  \"background\": \"#222222\",\n  \"radius\": 4\n}\n"
	after := "{\n  \"background\": \"#00ff00\",\n  \"radius\": 4\n}\n"

	out := Unified(before, after, "theme.json", "theme.json + dark.yaml")
	require.True(t, strings.HasPrefix(out, "--- theme.json\n+++ theme.json + dark.yaml\n@@ -1,4 +1,4 @@\n"))
	require.Contains(t, out, "-  \"background\": \"#222222\",\n")
	require.Contains(t, out, "+  \"background\": \"#00ff00\",\n")
	require.Contains(t, out, "   \"radius\": 4\n")
}

func TestUnified_AddedLines(t *testing.T) {
	t.Parallel()

	out := Unified("a\n", "a\nb\nc\n", "x", "y")
	require.Contains(t, out, "@@ -1,1 +1,3 @@")
	require.Contains(t, out, " a\n+b\n+c\n")
}

func TestUnified_Truncates(t *testing.T) {
	t.Parallel()

	var after strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		after.WriteString("line\n")
	}

	out := Unified("", after.String(), "empty", "large")
	require.Contains(t, out, truncateMessage)
	require.LessOrEqual(t, strings.Count(out, "\n"), maxDiffLines+1)
}
