package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/validation"
)

type generateOptions struct {
	template      string
	templatesFile string
	teams         []string
	teamCount     int
	fields        int
	start         string
	output        string
	document      bool
}

func newGenerateCmd(opts *globalOptions) *cobra.Command {
	g := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a schedule from a tournament template",
		Example: `  schedulectl generate --template groups-2x3-playoff --teams Adler,Bären,Füchse,Luchse,Wölfe,Falken
  schedulectl generate --template knockout-8 --team-count 8 --fields 2 --start 09:30 -o cup.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, g)
		},
	}
	cmd.Flags().StringVarP(&g.template, "template", "t", "", "template id (see `schedulectl templates`)")
	cmd.Flags().StringVar(&g.templatesFile, "templates-file", "", "YAML file with additional templates")
	cmd.Flags().StringSliceVar(&g.teams, "teams", nil, "comma separated team names")
	cmd.Flags().IntVar(&g.teamCount, "team-count", 0, "number of anonymous teams when --teams is not given")
	cmd.Flags().IntVar(&g.fields, "fields", 0, "number of fields (template default when 0)")
	cmd.Flags().StringVar(&g.start, "start", "", "start time of the first games, HH:MM")
	cmd.Flags().StringVarP(&g.output, "output", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&g.document, "document", false, "write the full graph document instead of the flat format")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *globalOptions, g *generateOptions) error {
	logger := opts.logger(cmd)

	catalogue := brackets.DefaultCatalogue()
	if g.templatesFile != "" {
		var err error
		if catalogue, err = brackets.LoadCatalogueFile(g.templatesFile); err != nil {
			return err
		}
	}

	teams := g.teams
	if len(teams) == 0 {
		for i := 1; i <= g.teamCount; i++ {
			teams = append(teams, fmt.Sprintf("Team %d", i))
		}
	}

	cfg := brackets.Config{
		TemplateID: g.template,
		FieldCount: g.fields,
		StartTime:  g.start,
	}
	// Явно заданные флаги важнее длительностей шаблона
	if cmd.Flags().Changed("game-duration") {
		cfg.GameDuration = opts.gameDuration
	}
	if cmd.Flags().Changed("break-duration") {
		b := opts.breakDuration
		cfg.BreakDuration = &b
	}

	engine := opts.engine()
	store := services.NewSessionStore(services.SessionStoreConfig{
		Engine:            engine,
		ValidationOptions: validation.Options{DefaultDuration: engine.DefaultDuration},
		Logger:            logger,
	})
	svc := services.NewScheduleService(store, brackets.NewGenerator(catalogue, logger), nil, nil, logger)

	res, err := svc.Generate(cmd.Context(), services.GenerateRequest{Teams: teams, Config: cfg})
	if err != nil {
		return err
	}
	for _, skipped := range res.Tournament.Skipped {
		logger.Warn("stage skipped", "stage", skipped)
	}

	var data []byte
	if g.document {
		res.Session.View(func(gr *models.Graph) {
			data, err = json.MarshalIndent(gr.Document(), "", "  ")
		})
	} else {
		data, err = svc.Export(res.Session.ID)
	}
	if err != nil {
		return err
	}
	return writeOutput(cmd, g.output, data)
}
