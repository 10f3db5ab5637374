package main

import (
	"github.com/spf13/cobra"
)

func newGetCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [path]",
		Short: "Print the theme value at a dot-separated path",
		Long: `Print the theme value at a dot-separated path as JSON.

Missing paths and falsy values print as an empty object. Without a path the
whole document is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runGet(cmd, flags, path)
		},
	}

	return cmd
}

func runGet(cmd *cobra.Command, flags *rootFlags, path string) error {
	app, err := loadApp(cmd, flags, "get")
	if err != nil {
		return err
	}

	app.Logger.Debug("lookup", "path", path)
	return writeJSON(cmd.OutOrStdout(), app.Resolver.Get(path))
}
