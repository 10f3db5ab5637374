package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/preview"
)

type previewOptions struct {
	interactive bool
	values      bool
	width       int
}

// runProgram runs the interactive browser; tests replace it.
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render color swatches in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Browse tones interactively")
	cmd.Flags().BoolVar(&opts.values, "values", false, "Print tone values under the swatches")
	cmd.Flags().IntVar(&opts.width, "width", preview.DefaultSwatchWidth, "Swatch width in cells")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, opts *previewOptions) error {
	app, err := loadApp(cmd, flags, "preview")
	if err != nil {
		return err
	}

	if opts.interactive {
		if !isTerminal(cmd.OutOrStdout()) {
			return newCommandError("preview", "starting tone browser", errors.New("stdout is not a terminal"), "Drop --interactive to print static swatches.")
		}
		app.Logger.Debug("launching tone browser")
		if err := runProgram(preview.NewModel(app.Resolver)); err != nil {
			return newCommandError("preview", "running tone browser", err, "")
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), preview.Render(app.Resolver, preview.Options{SwatchWidth: opts.width, ShowValues: opts.values}))
	return nil
}
