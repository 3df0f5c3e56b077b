package services

import (
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
)

type FieldAttrs struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Order *int   `json:"order"`
}

type StageAttrs struct {
	Name                string                    `json:"name"`
	Order               *int                      `json:"order"`
	StageType           models.StageType          `json:"stage_type"`
	ProgressionMode     models.ProgressionMode    `json:"progression_mode"`
	ProgressionConfig   *models.ProgressionConfig `json:"progression_config"`
	StartTime           string                    `json:"start_time"`
	DefaultGameDuration int                       `json:"default_game_duration"`
}

type GameAttrs struct {
	Standing       string  `json:"standing"`
	Duration       int     `json:"duration"`
	BreakAfter     *int    `json:"break_after"`
	StartTime      string  `json:"start_time"`
	ManualTime     bool    `json:"manual_time"`
	OfficialTeamID *string `json:"official_team_id"`
}

type TeamAttrs struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	GroupID string `json:"group_id"`
}

type GroupAttrs struct {
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

// AddField creates a field. Unset attributes get a sequential name and order
// and a palette color.
func (d *Designer) AddField(attrs FieldAttrs, withDefaultStage bool) *models.Field {
	count := len(d.g.Fields())
	f := &models.Field{
		ID:    d.newID(),
		Name:  attrs.Name,
		Order: count,
		Color: attrs.Color,
	}
	if f.Name == "" {
		f.Name = fmt.Sprintf("Field %d", count+1)
	}
	if attrs.Order != nil {
		f.Order = *attrs.Order
	}
	if f.Color == "" {
		f.Color = models.PaletteColor(count)
	}
	d.g.PutField(f)
	if withDefaultStage {
		_, _ = d.AddStage(f.ID, StageAttrs{})
	}
	return f
}

// AddStage creates a stage inside fieldID.
func (d *Designer) AddStage(fieldID string, attrs StageAttrs) (*models.Stage, error) {
	if _, ok := d.g.Field(fieldID); !ok {
		return nil, fmt.Errorf("add stage to %q: %w", fieldID, ErrFieldNotFound)
	}
	if attrs.StartTime != "" {
		if _, ok := timing.ParseClock(attrs.StartTime); !ok {
			return nil, fmt.Errorf("stage start %q: %w", attrs.StartTime, ErrInvalidTime)
		}
	}
	siblings := d.g.FieldStages(fieldID)
	s := &models.Stage{
		ID:                  d.newID(),
		ParentFieldID:       fieldID,
		Name:                attrs.Name,
		Order:               len(siblings),
		StageType:           attrs.StageType,
		ProgressionMode:     attrs.ProgressionMode,
		ProgressionConfig:   attrs.ProgressionConfig,
		StartTime:           attrs.StartTime,
		DefaultGameDuration: attrs.DefaultGameDuration,
	}
	if attrs.Order != nil {
		s.Order = *attrs.Order
	}
	if s.Name == "" {
		s.Name = fmt.Sprintf("Stage %d", len(siblings)+1)
	}
	if s.StageType == "" {
		s.StageType = models.StageTypePreliminary
	}
	if s.ProgressionMode == "" {
		s.ProgressionMode = models.ProgressionManual
	}
	if s.DefaultGameDuration <= 0 {
		s.DefaultGameDuration = d.engine.DefaultDuration
	}
	d.g.PutStage(s)
	return s, nil
}

// AddGame appends a game to stageID. An empty stageID places the game through
// EnsureContainerHierarchy with no selection.
func (d *Designer) AddGame(stageID string, attrs GameAttrs) (*models.Game, error) {
	if stageID == "" {
		_, stageID = d.EnsureContainerHierarchy(Selection{})
	}
	if _, ok := d.g.Stage(stageID); !ok {
		return nil, fmt.Errorf("add game to %q: %w", stageID, ErrStageNotFound)
	}
	if attrs.StartTime != "" {
		if _, ok := timing.ParseClock(attrs.StartTime); !ok {
			return nil, fmt.Errorf("game start %q: %w", attrs.StartTime, ErrInvalidTime)
		}
	}
	if attrs.OfficialTeamID != nil {
		if _, ok := d.g.Team(*attrs.OfficialTeamID); !ok {
			return nil, fmt.Errorf("official %q: %w", *attrs.OfficialTeamID, ErrTeamNotFound)
		}
	}

	siblings := d.g.StageGames(stageID)
	n := &models.Game{
		ID:             d.newID(),
		ParentStageID:  stageID,
		Standing:       attrs.Standing,
		Duration:       attrs.Duration,
		BreakAfter:     d.engine.DefaultBreak,
		StartTime:      attrs.StartTime,
		ManualTime:     attrs.ManualTime || attrs.StartTime != "",
		OfficialTeamID: attrs.OfficialTeamID,
		Position:       models.Position{X: 0, Y: float64(len(siblings)) * rowSpacing},
	}
	if attrs.BreakAfter != nil {
		n.BreakAfter = *attrs.BreakAfter
	}
	if n.Standing == "" {
		n.Standing = fmt.Sprintf("Game %d", len(d.g.Games())+1)
	}
	d.g.PutGame(n)
	d.recalcFrom(stageID, len(siblings))
	return n, nil
}

// AddTeam creates a team. An empty stageID adds it to the global pool.
func (d *Designer) AddTeam(stageID string, attrs TeamAttrs) (*models.Team, error) {
	if stageID != "" {
		if _, ok := d.g.Stage(stageID); !ok {
			return nil, fmt.Errorf("add team to %q: %w", stageID, ErrStageNotFound)
		}
	}
	if attrs.GroupID != "" {
		if _, ok := d.g.Group(attrs.GroupID); !ok {
			return nil, fmt.Errorf("team group %q: %w", attrs.GroupID, ErrGroupNotFound)
		}
	}
	t := &models.Team{
		ID:            d.newID(),
		Label:         attrs.Label,
		Color:         attrs.Color,
		GroupID:       attrs.GroupID,
		ParentStageID: stageID,
		Position:      d.slotBelow(stageID, ""),
	}
	if t.Label == "" {
		t.Label = fmt.Sprintf("Team %d", len(d.g.Teams())+1)
	}
	d.g.PutTeam(t)
	return t, nil
}

// AddTeamGroup creates a team group.
func (d *Designer) AddTeamGroup(attrs GroupAttrs) *models.TeamGroup {
	count := len(d.g.Groups())
	gr := &models.TeamGroup{ID: d.newID(), Name: attrs.Name, Order: count}
	if gr.Name == "" {
		gr.Name = fmt.Sprintf("Group %c", rune('A'+count%26))
	}
	if attrs.Order != nil {
		gr.Order = *attrs.Order
	}
	d.g.PutGroup(gr)
	return gr
}

// SetTeamGroup moves a team into groupID; an empty groupID removes it from
// its group.
func (d *Designer) SetTeamGroup(teamID, groupID string) error {
	t, ok := d.g.Team(teamID)
	if !ok {
		return fmt.Errorf("set group of %q: %w", teamID, ErrTeamNotFound)
	}
	if groupID != "" {
		if _, ok := d.g.Group(groupID); !ok {
			return fmt.Errorf("set group of %q: %w", teamID, ErrGroupNotFound)
		}
	}
	t.GroupID = groupID
	d.g.Touch()
	return nil
}

// DeleteResult lists what a deletion removed.
type DeleteResult struct {
	Nodes []string `json:"nodes"`
	Edges []string `json:"edges"`
}

// DeleteNode removes id and everything it owns in two phases: collect the
// descendant ids, then drop them together with every edge touching them.
// Surviving games lose any dynamic reference or team id that pointed into the
// removed set.
func (d *Designer) DeleteNode(id string) (*DeleteResult, error) {
	kind, ok := d.g.Kind(id)
	if !ok {
		return nil, fmt.Errorf("delete %q: %w", id, ErrNotFound)
	}

	removed := d.g.Descendants(id)
	res := &DeleteResult{}
	for _, n := range d.g.Fields() {
		if _, ok := removed[n.ID]; ok {
			res.Nodes = append(res.Nodes, n.ID)
		}
	}
	for _, n := range d.g.Stages() {
		if _, ok := removed[n.ID]; ok {
			res.Nodes = append(res.Nodes, n.ID)
		}
	}
	for _, n := range d.g.Games() {
		if _, ok := removed[n.ID]; ok {
			res.Nodes = append(res.Nodes, n.ID)
		}
	}
	for _, n := range d.g.Teams() {
		if _, ok := removed[n.ID]; ok {
			res.Nodes = append(res.Nodes, n.ID)
		}
	}
	if kind == models.KindGroup {
		res.Nodes = append(res.Nodes, id)
		for _, t := range d.g.Teams() {
			if t.GroupID == id {
				t.GroupID = ""
			}
		}
	}

	for _, e := range d.g.RemoveNodes(removed) {
		res.Edges = append(res.Edges, e.ID)
		d.clearProjection(e)
	}
	d.clearStaleTeamIDs(removed)

	d.logger.Info("node deleted",
		slog.String("node_id", id),
		slog.String("kind", string(kind)),
		slog.Int("nodes_removed", len(res.Nodes)),
		slog.Int("edges_removed", len(res.Edges)),
	)
	if kind == models.KindGame || kind == models.KindStage || kind == models.KindField {
		d.Recalculate()
	}
	return res, nil
}

// clearStaleTeamIDs unsets static team and official ids that name removed teams.
func (d *Designer) clearStaleTeamIDs(removed map[string]struct{}) {
	gone := func(p *string) bool {
		if p == nil {
			return false
		}
		_, ok := removed[*p]
		return ok
	}
	for _, n := range d.g.Games() {
		if gone(n.HomeTeamID) {
			d.g.ClearSlot(n.ID, models.SlotHome)
		}
		if gone(n.AwayTeamID) {
			d.g.ClearSlot(n.ID, models.SlotAway)
		}
		if gone(n.OfficialTeamID) {
			n.OfficialTeamID = nil
			d.g.Touch()
		}
	}
}

// MoveNodeToStage reparents a game or team. The node is placed below its new
// siblings and, for games, appended to the stage's array sequence.
func (d *Designer) MoveNodeToStage(nodeID, stageID string) error {
	if _, ok := d.g.Stage(stageID); !ok {
		return fmt.Errorf("move %q: %w", nodeID, ErrStageNotFound)
	}
	kind, ok := d.g.Kind(nodeID)
	if !ok {
		return fmt.Errorf("move %q: %w", nodeID, ErrNotFound)
	}

	switch kind {
	case models.KindGame:
		n, _ := d.g.Game(nodeID)
		from := n.ParentStageID
		if from == stageID {
			return nil
		}
		n.Position = d.slotBelow(stageID, nodeID)
		n.ParentStageID = stageID
		d.g.MoveToEnd(nodeID)
		d.recalcFrom(from, 0)
		d.recalcFrom(stageID, 0)
	case models.KindTeam:
		t, _ := d.g.Team(nodeID)
		if t.ParentStageID == stageID {
			return nil
		}
		t.Position = d.slotBelow(stageID, nodeID)
		t.ParentStageID = stageID
		d.g.MoveToEnd(nodeID)
	default:
		return fmt.Errorf("move %q (%s): %w", nodeID, kind, ErrNotMovable)
	}
	return nil
}

// slotBelow returns a position under the lowest game or team of a stage,
// ignoring the node being placed.
func (d *Designer) slotBelow(stageID, except string) models.Position {
	lowest, found := 0.0, false
	consider := func(id string, p models.Position) {
		if id == except {
			return
		}
		if !found || p.Y > lowest {
			lowest, found = p.Y, true
		}
	}
	for _, n := range d.g.StageGames(stageID) {
		consider(n.ID, n.Position)
	}
	for _, t := range d.g.StageTeams(stageID) {
		consider(t.ID, t.Position)
	}
	if stageID == "" {
		for _, t := range d.g.Teams() {
			if t.ParentStageID == "" {
				consider(t.ID, t.Position)
			}
		}
	}
	if !found {
		return models.Position{}
	}
	return models.Position{X: 0, Y: lowest + rowSpacing}
}

// GamePatch changes game attributes. Nil members are left untouched.
type GamePatch struct {
	Standing   *string `json:"standing"`
	Duration   *int    `json:"duration"`
	BreakAfter *int    `json:"break_after"`
	StartTime  *string `json:"start_time"`
	ManualTime *bool   `json:"manual_time"`
}

// UpdateGame applies a patch. A new standing is pushed to every dynamic
// reference naming the game; timing changes re-run propagation from the game's
// position. Setting a start time pins the game unless ManualTime is set false
// in the same patch.
func (d *Designer) UpdateGame(gameID string, p GamePatch) error {
	n, ok := d.g.Game(gameID)
	if !ok {
		return fmt.Errorf("update game %q: %w", gameID, ErrGameNotFound)
	}
	if p.StartTime != nil && *p.StartTime != "" {
		if _, ok := timing.ParseClock(*p.StartTime); !ok {
			return fmt.Errorf("game start %q: %w", *p.StartTime, ErrInvalidTime)
		}
	}

	renamed := p.Standing != nil && *p.Standing != n.Standing
	if p.Standing != nil {
		n.Standing = *p.Standing
	}
	if p.Duration != nil {
		n.Duration = *p.Duration
	}
	if p.BreakAfter != nil {
		n.BreakAfter = *p.BreakAfter
	}
	if p.StartTime != nil {
		n.StartTime = *p.StartTime
		n.ManualTime = *p.StartTime != ""
	}
	if p.ManualTime != nil {
		n.ManualTime = *p.ManualTime
	}
	d.g.Touch()

	if renamed {
		syncDynamicRefs(d.g)
	}
	if p.Duration != nil || p.BreakAfter != nil || p.StartTime != nil || p.ManualTime != nil {
		d.recalcFrom(n.ParentStageID, indexInStage(d.g, n.ParentStageID, n.ID))
	}
	return nil
}

// StagePatch changes stage attributes. Nil members are left untouched; an
// empty StartTime clears the explicit start.
type StagePatch struct {
	Name                *string                   `json:"name"`
	Order               *int                      `json:"order"`
	StartTime           *string                   `json:"start_time"`
	StageType           *models.StageType         `json:"stage_type"`
	ProgressionMode     *models.ProgressionMode   `json:"progression_mode"`
	ProgressionConfig   *models.ProgressionConfig `json:"progression_config"`
	DefaultGameDuration *int                      `json:"default_game_duration"`
}

func (d *Designer) UpdateStage(stageID string, p StagePatch) error {
	s, ok := d.g.Stage(stageID)
	if !ok {
		return fmt.Errorf("update stage %q: %w", stageID, ErrStageNotFound)
	}
	if p.StartTime != nil && *p.StartTime != "" {
		if _, ok := timing.ParseClock(*p.StartTime); !ok {
			return fmt.Errorf("stage start %q: %w", *p.StartTime, ErrInvalidTime)
		}
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Order != nil {
		s.Order = *p.Order
	}
	if p.StartTime != nil {
		s.StartTime = *p.StartTime
	}
	if p.StageType != nil {
		s.StageType = *p.StageType
	}
	if p.ProgressionMode != nil {
		s.ProgressionMode = *p.ProgressionMode
	}
	if p.ProgressionConfig != nil {
		s.ProgressionConfig = p.ProgressionConfig
	}
	if p.DefaultGameDuration != nil {
		s.DefaultGameDuration = *p.DefaultGameDuration
	}
	d.g.Touch()

	switch {
	case p.Order != nil:
		d.Recalculate()
	case p.StartTime != nil || p.DefaultGameDuration != nil:
		d.recalcFrom(stageID, 0)
	}
	return nil
}
