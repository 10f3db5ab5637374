package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/theme"
)

type rootFlags struct {
	theme      string
	overlays   []string
	mode       string
	verbose    bool
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tonal",
		Short:         "Tonal resolves symbolic color references against a theme",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Theme document (JSON or YAML)")
	cmd.PersistentFlags().StringArrayVar(&flags.overlays, "overlay", nil, "Overlay document merged over the theme (repeatable)")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "Diagnostic mode: "+strings.Join(theme.ModeNames(), ", "))
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Emit JSON output")

	cmd.AddCommand(newGetCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newStyleCmd(flags))
	cmd.AddCommand(newColorsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newScaleCmd(flags))
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newLayersCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
