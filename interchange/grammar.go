// Package interchange reads and writes the flat JSON schedule format: one
// record per field, each listing its games in play order with team
// references written as strings.
package interchange

import (
	"regexp"
	"strconv"

	"github.com/Dosada05/tournament-scheduler/models"
)

// RefKind classifies a team reference string.
type RefKind string

const (
	RefEmpty     RefKind = "empty"
	RefGroupTeam RefKind = "group_team"
	RefStanding  RefKind = "standing"
	RefWinner    RefKind = "winner"
	RefLoser     RefKind = "loser"
	RefLiteral   RefKind = "literal"
)

const (
	winnerPrefix = "Gewinner "
	loserPrefix  = "Verlierer "
)

var (
	groupTeamPattern = regexp.MustCompile(`^(\d+)_(\d+)$`)
	standingPattern  = regexp.MustCompile(`^P(\d+) (.+)$`)
	winnerPattern    = regexp.MustCompile(`^` + winnerPrefix + `(.+)$`)
	loserPattern     = regexp.MustCompile(`^` + loserPrefix + `(.+)$`)
)

// TeamRef is a parsed team reference. Raw always holds the original string.
type TeamRef struct {
	Kind  RefKind `json:"kind"`
	Raw   string  `json:"raw"`
	Group int     `json:"group,omitempty"` // zero-based, group_team
	Team  int     `json:"team,omitempty"`  // zero-based, group_team
	Place int     `json:"place,omitempty"` // standing
	Name  string  `json:"name,omitempty"`  // group name (standing) or match name (winner, loser)
}

// ParseTeamRef classifies s. Anything that matches no pattern is a literal
// team label; the empty string is an empty slot.
func ParseTeamRef(s string) TeamRef {
	ref := TeamRef{Kind: RefLiteral, Raw: s}
	if s == "" {
		ref.Kind = RefEmpty
		return ref
	}
	if m := groupTeamPattern.FindStringSubmatch(s); m != nil {
		g, err1 := strconv.Atoi(m[1])
		t, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			ref.Kind, ref.Group, ref.Team = RefGroupTeam, g, t
		}
		return ref
	}
	if m := standingPattern.FindStringSubmatch(s); m != nil {
		if p, err := strconv.Atoi(m[1]); err == nil {
			ref.Kind, ref.Place, ref.Name = RefStanding, p, m[2]
		}
		return ref
	}
	if m := winnerPattern.FindStringSubmatch(s); m != nil {
		ref.Kind, ref.Name = RefWinner, m[1]
		return ref
	}
	if m := loserPattern.FindStringSubmatch(s); m != nil {
		ref.Kind, ref.Name = RefLoser, m[1]
		return ref
	}
	return ref
}

// IsDynamic reports a winner or loser reference.
func (r TeamRef) IsDynamic() bool {
	return r.Kind == RefWinner || r.Kind == RefLoser
}

// Output returns the game result a dynamic reference follows.
func (r TeamRef) Output() models.OutputType {
	if r.Kind == RefLoser {
		return models.OutputLoser
	}
	return models.OutputWinner
}

func (r TeamRef) String() string {
	return r.Raw
}

// FormatDynamic writes a dynamic reference back in reference syntax.
func FormatDynamic(ref models.DynamicRef) string {
	if ref.Type == models.OutputLoser {
		return loserPrefix + ref.MatchName
	}
	return winnerPrefix + ref.MatchName
}
