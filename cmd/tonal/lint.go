package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tonal/internal/document"
)

type lintPayload struct {
	OK       bool          `json:"ok"`
	Findings []lintFinding `json:"findings"`
}

type lintFinding struct {
	Channel string `json:"channel"`
	Message string `json:"message"`
}

func newLintCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate the theme and report unresolved references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, flags)
		},
	}

	return cmd
}

func runLint(cmd *cobra.Command, flags *rootFlags) error {
	settings, log, err := loadSettings(cmd, flags, "lint")
	if err != nil {
		return err
	}

	doc, err := loadDocument(settings, log, "lint")
	if err != nil {
		return err
	}

	report := document.Lint(doc)
	log.Info("lint finished", "findings", len(report.Findings))

	if flags.jsonOutput {
		payload := lintPayload{OK: report.OK(), Findings: make([]lintFinding, 0, len(report.Findings))}
		for _, f := range report.Findings {
			payload.Findings = append(payload.Findings, lintFinding{Channel: f.Channel, Message: f.Message})
		}
		if err := writeJSON(cmd.OutOrStdout(), payload); err != nil {
			return err
		}
	} else {
		for _, f := range report.Findings {
			fmt.Fprintln(cmd.OutOrStdout(), f.String())
		}
		if report.OK() {
			fmt.Fprintln(cmd.OutOrStdout(), "No problems found.")
		}
	}

	if !report.OK() {
		return fmt.Errorf("lint found %d problem(s) in %s", len(report.Findings), settings.Theme)
	}
	return nil
}
