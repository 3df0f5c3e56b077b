package models

// Slot is one of the two team positions of a game.
type Slot string

const (
	SlotHome Slot = "home"
	SlotAway Slot = "away"
)

// Valid reports whether s names a game slot.
func (s Slot) Valid() bool {
	return s == SlotHome || s == SlotAway
}

// OutputType is the result of a game that propagates along a GameToGame edge.
type OutputType string

const (
	OutputWinner OutputType = "winner"
	OutputLoser  OutputType = "loser"
)

func (o OutputType) Valid() bool {
	return o == OutputWinner || o == OutputLoser
}

// DynamicRef is the "winner/loser of <standing>" projection of a GameToGame edge.
type DynamicRef struct {
	Type      OutputType `json:"type"`
	MatchName string     `json:"match_name"`
}

// Game is a single scheduled match owned by a stage.
type Game struct {
	ID              string      `json:"id"`
	ParentStageID   string      `json:"parent_stage_id"`
	Standing        string      `json:"standing"`
	HomeTeamID      *string     `json:"home_team_id,omitempty"`
	HomeTeamDynamic *DynamicRef `json:"home_team_dynamic,omitempty"`
	AwayTeamID      *string     `json:"away_team_id,omitempty"`
	AwayTeamDynamic *DynamicRef `json:"away_team_dynamic,omitempty"`
	OfficialTeamID  *string     `json:"official_team_id,omitempty"`
	StartTime       string      `json:"start_time,omitempty"`
	Duration        int         `json:"duration"`
	BreakAfter      int         `json:"break_after"`
	ManualTime      bool        `json:"manual_time"`
	Position        Position    `json:"position"`
}

// TeamID returns the static team of a slot, or nil.
func (g *Game) TeamID(slot Slot) *string {
	if slot == SlotAway {
		return g.AwayTeamID
	}
	return g.HomeTeamID
}

// Dynamic returns the dynamic reference of a slot, or nil.
func (g *Game) Dynamic(slot Slot) *DynamicRef {
	if slot == SlotAway {
		return g.AwayTeamDynamic
	}
	return g.HomeTeamDynamic
}

// setTeam assigns a static team and clears the slot's dynamic reference.
func (g *Game) setTeam(slot Slot, teamID *string) {
	if slot == SlotAway {
		g.AwayTeamID = teamID
		g.AwayTeamDynamic = nil
		return
	}
	g.HomeTeamID = teamID
	g.HomeTeamDynamic = nil
}

// setDynamic assigns a dynamic reference and clears the slot's static team.
func (g *Game) setDynamic(slot Slot, ref *DynamicRef) {
	if slot == SlotAway {
		g.AwayTeamDynamic = ref
		g.AwayTeamID = nil
		return
	}
	g.HomeTeamDynamic = ref
	g.HomeTeamID = nil
}

func (g *Game) clone() *Game {
	c := *g
	c.HomeTeamID = cloneString(g.HomeTeamID)
	c.AwayTeamID = cloneString(g.AwayTeamID)
	c.OfficialTeamID = cloneString(g.OfficialTeamID)
	if g.HomeTeamDynamic != nil {
		ref := *g.HomeTeamDynamic
		c.HomeTeamDynamic = &ref
	}
	if g.AwayTeamDynamic != nil {
		ref := *g.AwayTeamDynamic
		c.AwayTeamDynamic = &ref
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns a pointer to a copy of s.
func StringPtr(s string) *string {
	return &s
}
