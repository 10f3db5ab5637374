package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/palette"
)

type scaleOptions struct {
	count int
	name  string
}

func newScaleCmd(flags *rootFlags) *cobra.Command {
	opts := &scaleOptions{}

	cmd := &cobra.Command{
		Use:   "scale <hex>",
		Short: "Generate a tone ladder around a base color",
		Long: `Generate a tone ladder around a base color and print it as a "color" entry.

The base color sits at the middle index, lighter tones before it and darker
tones after it. The output does not need a theme.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScale(cmd, flags, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 9, "Number of tones")
	cmd.Flags().StringVar(&opts.name, "name", "primary", "Color name for the generated entry")

	return cmd
}

func runScale(cmd *cobra.Command, flags *rootFlags, opts *scaleOptions, base string) error {
	if strings.TrimSpace(opts.name) == "" {
		return newCommandError("scale", "validating --name", fmt.Errorf("name cannot be empty"), "")
	}

	tones, err := palette.Scale(base, opts.count)
	if err != nil {
		return newCommandError("scale", fmt.Sprintf("scaling %q", base), err, "Pass a hex color such as #3366ff and a positive --count.")
	}

	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), map[string]any{"color": map[string][]string{opts.name: tones}})
	}
	return writeJSON(cmd.OutOrStdout(), map[string][]string{opts.name: tones})
}
