package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

type styleOptions struct {
	path string
}

// stdin is read by "style -"; tests replace it.
var stdin io.Reader = os.Stdin

func newStyleCmd(flags *rootFlags) *cobra.Command {
	opts := &styleOptions{}

	cmd := &cobra.Command{
		Use:   "style [file|-]",
		Short: "Resolve every color reference in a style object",
		Long: `Resolve every color reference in a style object and print the result as JSON.

The style is read from a JSON file, from stdin with "-", or taken from the
theme itself with --path.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			return runStyle(cmd, flags, opts, source)
		},
	}

	cmd.Flags().StringVar(&opts.path, "path", "", "Resolve the theme subsection at this path")

	return cmd
}

func runStyle(cmd *cobra.Command, flags *rootFlags, opts *styleOptions, source string) error {
	if source == "" && opts.path == "" {
		return newCommandError("style", "reading style", errors.New("no style given"), "Pass a JSON file, '-' for stdin or --path.")
	}
	if source != "" && opts.path != "" {
		return newCommandError("style", "reading style", errors.New("a file and --path are mutually exclusive"), "")
	}

	app, err := loadApp(cmd, flags, "style")
	if err != nil {
		return err
	}

	var style theme.Style
	if opts.path != "" {
		style = app.Resolver.GetStyle(opts.path)
	} else {
		style, err = readStyle(source)
		if err != nil {
			return newCommandError("style", "reading "+source, err, "The style must be a JSON object.")
		}
	}

	resolved, err := app.Resolver.ResolveStyle(style)
	if err != nil {
		return newCommandError("style", "resolving style", err, "")
	}
	app.Logger.Debug("style resolved", "keys", len(resolved))
	return writeJSON(cmd.OutOrStdout(), resolved)
}

func readStyle(source string) (theme.Style, error) {
	var data []byte
	var err error
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode style: %w", err)
	}
	return theme.AsStyle(raw)
}
