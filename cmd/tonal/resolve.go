package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type resolveResult struct {
	Value    string `json:"value"`
	Resolved string `json:"resolved"`
}

func newResolveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <value>...",
		Short: "Resolve color references such as primary|-2",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, flags, args)
		},
	}

	return cmd
}

func runResolve(cmd *cobra.Command, flags *rootFlags, values []string) error {
	app, err := loadApp(cmd, flags, "resolve")
	if err != nil {
		return err
	}

	results := make([]resolveResult, 0, len(values))
	for _, value := range values {
		resolved, err := app.Resolver.ResolveColor(value)
		if err != nil {
			return newCommandError("resolve", fmt.Sprintf("resolving %q", value), err, "Strict mode rejects unknown colors and malformed tones.")
		}
		results = append(results, resolveResult{Value: value, Resolved: resolved})
	}

	if flags.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	for _, result := range results {
		fmt.Fprintln(cmd.OutOrStdout(), result.Resolved)
	}
	return nil
}
