package brackets

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Dosada05/tournament-scheduler/models"
)

// PatternKind selects how source games feed a bracket.
type PatternKind string

const (
	PatternSplit2x3        PatternKind = "split2x3"
	PatternSingle3         PatternKind = "single3"
	PatternSingle2         PatternKind = "single2"
	PatternFullBracket     PatternKind = "full_bracket"
	PatternCrossover       PatternKind = "crossover"
	PatternExplicitMapping PatternKind = "explicit_mapping"
)

type Pattern struct {
	Kind      PatternKind            `json:"kind"`
	Positions int                    `json:"positions"`
	Format    models.PlacementFormat `json:"format"`
	Sources   int                    `json:"sources"`
}

// ClassifyPattern picks the feeding pattern of a placement stage. An explicit
// mapping always wins.
func ClassifyPattern(positions int, format models.PlacementFormat, sourceCount int, hasMapping bool) Pattern {
	p := Pattern{Positions: positions, Format: format, Sources: sourceCount}
	switch {
	case hasMapping:
		p.Kind = PatternExplicitMapping
	case format == models.FormatCrossover:
		p.Kind = PatternCrossover
	case positions == 4 && sourceCount == 6:
		p.Kind = PatternSplit2x3
	case positions == 4 && sourceCount == 3:
		p.Kind = PatternSingle3
	case (positions == 2 || positions == 4) && sourceCount == 2:
		p.Kind = PatternSingle2
	default:
		p.Kind = PatternFullBracket
	}
	return p
}

// source is one result of a source game.
type source struct {
	game   *models.Game
	output models.OutputType
}

func win(n *models.Game) source {
	return source{game: n, output: models.OutputWinner}
}

func lose(n *models.Game) source {
	return source{game: n, output: models.OutputLoser}
}

// feed routes a source result into a bracket slot addressed by tag.
type feed struct {
	source
	to   string
	slot models.Slot
}

func match(tag string, home, away source) []feed {
	return []feed{
		{source: home, to: tag, slot: models.SlotHome},
		{source: away, to: tag, slot: models.SlotAway},
	}
}

// feeds returns the source-to-bracket routing of a fixed pattern.
func (p Pattern) feeds(stage *models.Stage, targets, sources []*models.Game) []feed {
	s := sources
	switch p.Kind {
	case PatternSplit2x3:
		a, b := s[:3], s[3:6]
		return append(match("SF1", win(a[0]), win(b[0])), match("SF2", win(a[2]), win(b[2]))...)
	case PatternSingle2:
		if p.Positions == 2 {
			return match(TagFinal, win(s[0]), win(s[1]))
		}
		return append(match("SF1", win(s[0]), lose(s[1])), match("SF2", win(s[1]), lose(s[0]))...)
	case PatternSingle3:
		return append(match("SF1", win(s[0]), win(s[1])), match("SF2", win(s[2]), lose(s[0]))...)
	case PatternCrossover:
		if len(s) < 2 {
			return nil
		}
		a, b := s[len(s)/2-1], s[len(s)-1]
		return append(match("CO1", win(a), lose(b)), match("CO2", win(b), lose(a))...)
	case PatternFullBracket:
		var out []feed
		k := 0
		for _, n := range firstRound(stage, targets) {
			for _, slot := range []models.Slot{models.SlotHome, models.SlotAway} {
				if k >= len(s) {
					return out
				}
				out = append(out, feed{source: win(s[k]), to: n.Standing, slot: slot})
				k++
			}
		}
		return out
	}
	return nil
}

// CreatePlacementEdges wires source games into the bracket of a placement
// stage and adds the bracket's internal edges. It never fails: a malformed
// config, a non-placement stage, a missing target game or an internal error
// all yield an empty list and a logged diagnostic, so one bad stage does not
// stop the rest of a tournament from generating.
func CreatePlacementEdges(stage *models.Stage, targets, sources []*models.Game, logger *slog.Logger) (edges []models.EdgeSpec) {
	if logger == nil {
		logger = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("placement edge generation failed",
				slog.String("stage_id", stage.ID),
				slog.Any("panic", r),
			)
			edges = []models.EdgeSpec{}
		}
	}()

	edges, err := placementEdges(stage, targets, sources, logger)
	if err != nil {
		logger.Warn("placement edges skipped",
			slog.String("stage_id", stage.ID),
			slog.String("stage", stage.Name),
			slog.Any("error", err),
		)
		return []models.EdgeSpec{}
	}
	return edges
}

func placementEdges(stage *models.Stage, targets, sources []*models.Game, logger *slog.Logger) ([]models.EdgeSpec, error) {
	if stage.ProgressionMode != models.ProgressionPlacement {
		return nil, fmt.Errorf("%w: stage mode is %q", ErrInvalidConfig, stage.ProgressionMode)
	}
	cfg := stage.ProgressionConfig
	if cfg == nil {
		return nil, fmt.Errorf("%w: missing progression config", ErrInvalidConfig)
	}
	if _, err := placementTags(cfg.Positions, cfg.Format); err != nil {
		return nil, err
	}

	pattern := ClassifyPattern(cfg.Positions, cfg.Format, len(sources), len(cfg.Mapping) > 0)
	var feeds []feed
	if pattern.Kind == PatternExplicitMapping {
		var err error
		if feeds, err = mappingFeeds(cfg.Mapping, targets, sources, logger); err != nil {
			return nil, err
		}
	} else {
		feeds = pattern.feeds(stage, targets, sources)
	}

	edges := make([]models.EdgeSpec, 0, len(feeds)+4)
	taken := make(map[string]struct{})
	for _, f := range feeds {
		dst, ok := findByTag(targets, f.to)
		if !ok {
			return nil, fmt.Errorf("%w: target game %q not found", ErrInvalidConfig, f.to)
		}
		taken[dst.ID+"/"+string(f.slot)] = struct{}{}
		edges = append(edges, models.EdgeSpec{
			SourceGameID: f.game.ID,
			OutputType:   f.output,
			TargetGameID: dst.ID,
			TargetSlot:   f.slot,
		})
	}
	for _, e := range InternalEdges(stage, targets) {
		if _, ok := taken[e.TargetGameID+"/"+string(e.TargetSlot)]; ok {
			continue
		}
		edges = append(edges, e)
	}
	return edges, nil
}

// mappingFeeds resolves an explicit progression mapping. Rank specs name a
// final group standing, which no game result carries, so they produce no feed.
func mappingFeeds(mapping models.ProgressionMapping, targets, sources []*models.Game, logger *slog.Logger) ([]feed, error) {
	standings := make([]string, 0, len(mapping))
	for k := range mapping {
		standings = append(standings, k)
	}
	sort.Strings(standings)

	var out []feed
	for _, standing := range standings {
		if _, ok := findByTag(targets, standing); !ok {
			return nil, fmt.Errorf("%w: mapping target %q not found", ErrInvalidConfig, standing)
		}
		m := mapping[standing]
		for _, side := range []struct {
			spec *models.SourceSpec
			slot models.Slot
		}{{m.Home, models.SlotHome}, {m.Away, models.SlotAway}} {
			if side.spec == nil {
				continue
			}
			f, ok, err := resolveSpec(*side.spec, sources)
			if err != nil {
				return nil, fmt.Errorf("mapping %q %s: %w", standing, side.slot, err)
			}
			if !ok {
				logger.Info("rank source has no game edge",
					slog.String("target", standing),
					slog.String("slot", string(side.slot)),
					slog.Int("rank", side.spec.Rank),
				)
				continue
			}
			f.to, f.slot = standing, side.slot
			out = append(out, f)
		}
	}
	return out, nil
}

func resolveSpec(spec models.SourceSpec, sources []*models.Game) (feed, bool, error) {
	var output models.OutputType
	switch spec.Type {
	case models.SourceWinner:
		output = models.OutputWinner
	case models.SourceLoser:
		output = models.OutputLoser
	case models.SourceRank:
		return feed{}, false, nil
	default:
		return feed{}, false, fmt.Errorf("%w: source type %q", ErrInvalidConfig, spec.Type)
	}
	pool := sources
	if spec.SourceStageID != "" {
		pool = nil
		for _, n := range sources {
			if n.ParentStageID == spec.SourceStageID {
				pool = append(pool, n)
			}
		}
	}
	if spec.SourceIndex < 0 || spec.SourceIndex >= len(pool) {
		return feed{}, false, fmt.Errorf("%w: source index %d out of range (%d games)", ErrInvalidConfig, spec.SourceIndex, len(pool))
	}
	return feed{source: source{game: pool[spec.SourceIndex], output: output}}, true, nil
}
