package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-scheduler/interchange"
	"github.com/Dosada05/tournament-scheduler/models"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		output      string
		recalculate bool
	)
	cmd := &cobra.Command{
		Use:   "export [document]",
		Short: "Convert a graph document into the flat JSON schedule format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var doc models.Document
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("decoding graph document: %w", err)
			}
			g, err := models.GraphFromDocument(doc)
			if err != nil {
				return err
			}
			if recalculate {
				opts.engine().Calculate(g)
			}
			out, err := interchange.Marshal(g)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&recalculate, "recalculate", false, "recompute start times before exporting")
	return cmd
}

func newImportCmd(opts *globalOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "import [schedule]",
		Short: "Convert a flat JSON schedule into a graph document",
		Long: `Convert a flat JSON schedule into a graph document.

References that cannot be resolved are reported on stderr and the affected
slots are left empty.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			g, warnings, err := interchange.Import(data, interchange.Options{Engine: opts.engine(), Logger: opts.logger(cmd)})
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", w.Code, w.Message)
			}
			out, err := json.MarshalIndent(g.Document(), "", "  ")
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty)")
	return cmd
}
