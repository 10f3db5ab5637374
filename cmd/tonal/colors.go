package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type colorSetPayload struct {
	Name          string   `json:"name"`
	Tones         []string `json:"tones"`
	MiddleIndex   int      `json:"middle_index"`
	LowestOffset  int      `json:"lowest_offset"`
	HighestOffset int      `json:"highest_offset"`
	Base          string   `json:"base"`
}

func newColorsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the theme's color sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColors(cmd, flags)
		},
	}

	return cmd
}

func runColors(cmd *cobra.Command, flags *rootFlags) error {
	app, err := loadApp(cmd, flags, "colors")
	if err != nil {
		return err
	}

	sets := app.Resolver.ColorSets()
	payload := make([]colorSetPayload, 0, len(sets))
	for _, set := range sets {
		payload = append(payload, colorSetPayload{
			Name:          set.Name(),
			Tones:         set.Tones(),
			MiddleIndex:   set.MiddleIndex(),
			LowestOffset:  set.LowestOffset(),
			HighestOffset: set.HighestOffset(),
			Base:          set.Base(),
		})
	}

	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	if len(payload) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No colors declared.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tBASE\tMIDDLE\tOFFSETS\tTONES")
	for _, p := range payload {
		fmt.Fprintf(writer, "%s\t%s\t%d\t%d..%d\t%s\n",
			p.Name,
			p.Base,
			p.MiddleIndex,
			p.LowestOffset,
			p.HighestOffset,
			strings.Join(p.Tones, " "),
		)
	}
	return writer.Flush()
}
