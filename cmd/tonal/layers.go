package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/stack"
)

type layerPayload struct {
	ID     string `json:"id"`
	ZIndex int    `json:"z_index"`
}

func newLayersCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers <id>...",
		Short: "Assign stacking z-indices to layers in opening order",
		Long: `Assign stacking z-indices to layers in opening order.

Base and step come from zIndex.base and zIndex.step in the theme. Repeating an
id keeps its first z-index.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayers(cmd, flags, args)
		},
	}

	return cmd
}

func runLayers(cmd *cobra.Command, flags *rootFlags, ids []string) error {
	app, err := loadApp(cmd, flags, "layers")
	if err != nil {
		return err
	}

	registry := stack.FromResolver(app.Resolver)
	payload := make([]layerPayload, 0, len(ids))
	for _, id := range ids {
		z := registry.Register(id)
		payload = append(payload, layerPayload{ID: id, ZIndex: z})
	}

	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), payload)
	}
	for _, p := range payload {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.ID, p.ZIndex)
	}
	return nil
}
