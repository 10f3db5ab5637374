package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/document"
	"github.com/alexisbeaulieu97/tonal/internal/theme"
	"github.com/alexisbeaulieu97/tonal/pkg/diff"
)

func newDiffCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [other-theme]",
		Short: "Show how overlays or another theme change resolved values",
		Long: `Show how overlays or another theme change resolved values.

Without an argument the base theme is compared with the theme after all
overlays are merged. With an argument the merged theme is compared with
other-theme. Both sides are fully resolved before comparing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			other := ""
			if len(args) == 1 {
				other = args[0]
			}
			return runDiff(cmd, flags, other)
		},
	}

	return cmd
}

func runDiff(cmd *cobra.Command, flags *rootFlags, other string) error {
	app, err := loadApp(cmd, flags, "diff")
	if err != nil {
		return err
	}

	var before, after theme.Document
	var beforeLabel, afterLabel string
	if other == "" {
		if len(app.Settings.Overlays) == 0 {
			return newCommandError("diff", "comparing overlays", errors.New("no overlays configured"), "Pass --overlay or name a theme to compare with.")
		}
		base, err := document.Load(app.Settings.Theme)
		if err != nil {
			return newCommandError("diff", "loading theme "+app.Settings.Theme, err, "")
		}
		before, after = base, app.Document
		beforeLabel = app.Settings.Theme
		afterLabel = strings.Join(append([]string{app.Settings.Theme}, app.Settings.Overlays...), " + ")
	} else {
		otherDoc, err := document.Load(other)
		if err != nil {
			return newCommandError("diff", "loading theme "+other, err, "Check the file exists and is valid JSON or YAML.")
		}
		before, after = app.Document, otherDoc
		beforeLabel, afterLabel = app.Settings.Theme, other
	}

	beforeText, err := resolvedJSON(before, app.Resolver.Mode())
	if err != nil {
		return newCommandError("diff", "resolving "+beforeLabel, err, "")
	}
	afterText, err := resolvedJSON(after, app.Resolver.Mode())
	if err != nil {
		return newCommandError("diff", "resolving "+afterLabel, err, "")
	}

	out := diff.Unified(beforeText, afterText, beforeLabel, afterLabel)
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No differences.")
		return nil
	}
	app.Logger.Debug("resolved themes differ", "before", beforeLabel, "after", afterLabel)
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// resolvedJSON resolves every reference in doc and encodes the result with
// sorted keys so two documents compare line by line.
func resolvedJSON(doc theme.Document, mode theme.Mode) (string, error) {
	r, err := theme.New(doc, theme.WithMode(mode), theme.WithConsole(nil))
	if err != nil {
		return "", err
	}

	resolved, err := r.ResolveStyle(theme.Style(doc.Values()))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := writeJSON(&buf, resolved); err != nil {
		return "", err
	}
	return buf.String(), nil
}
