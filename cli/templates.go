package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Dosada05/tournament-scheduler/brackets"
)

func newTemplatesCmd() *cobra.Command {
	var (
		file   string
		asYAML bool
	)
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the available tournament templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue := brackets.DefaultCatalogue()
			if file != "" {
				var err error
				if catalogue, err = brackets.LoadCatalogueFile(file); err != nil {
					return err
				}
			}
			list := catalogue.List()

			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(map[string][]brackets.Template{"templates": list})
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTEAMS\tSTAGES\tNAME")
			for _, t := range list {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", t.ID, teamRange(t.Teams), len(t.Stages), t.Name)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&file, "templates-file", "", "YAML file with additional templates")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the full templates as YAML")
	return cmd
}

func teamRange(c brackets.TeamCount) string {
	switch {
	case c.Exact > 0:
		return fmt.Sprint(c.Exact)
	case c.Min > 0 && c.Max > 0:
		return fmt.Sprintf("%d-%d", c.Min, c.Max)
	case c.Min > 0:
		return fmt.Sprintf("%d+", c.Min)
	case c.Max > 0:
		return fmt.Sprintf("<=%d", c.Max)
	}
	return "any"
}
