package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-scheduler/interchange"
	"github.com/Dosada05/tournament-scheduler/validation"
)

type validateOutput struct {
	File       string                `json:"file"`
	Validation *validation.Result    `json:"validation"`
	Warnings   []interchange.Warning `json:"import_warnings,omitempty"`
}

func newValidateCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a flat JSON schedule document",
		Long: `Validate a flat JSON schedule document.

The exit code is 0 when the schedule has no errors (warnings are allowed)
and 1 when it has errors or cannot be read.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			engine := opts.engine()
			g, warnings, err := interchange.Import(data, interchange.Options{Engine: engine, Logger: opts.logger(cmd)})
			if err != nil {
				return err
			}
			res := validation.Validate(g, validation.Options{DefaultDuration: engine.DefaultDuration})

			file := "-"
			if len(args) > 0 {
				file = args[0]
			}
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), validateOutput{File: file, Validation: res, Warnings: warnings}); err != nil {
					return err
				}
			} else {
				printResult(cmd, file, res, warnings)
			}
			if !res.IsValid {
				return ErrInvalidSchedule
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func printResult(cmd *cobra.Command, file string, res *validation.Result, warnings []interchange.Warning) {
	out := cmd.OutOrStdout()
	status := "valid"
	if !res.IsValid {
		status = "invalid"
	}
	fmt.Fprintf(out, "%s: %s (%d errors, %d warnings)\n", file, status, len(res.Errors), len(res.Warnings)+len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(out, "  warning  %s: %s\n", w.Code, w.Message)
	}
	for _, issue := range res.Errors {
		fmt.Fprintf(out, "  error    %s [%s]\n", issue.Type, strings.Join(issue.AffectedNodes, ", "))
	}
	for _, issue := range res.Warnings {
		fmt.Fprintf(out, "  warning  %s [%s]\n", issue.Type, strings.Join(issue.AffectedNodes, ", "))
	}
}
