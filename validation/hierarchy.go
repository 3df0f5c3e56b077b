package validation

// stageChainOK reports whether stageID names a stage whose parent is a field.
func (v *run) stageChainOK(stageID string) bool {
	stage, ok := v.g.Stage(stageID)
	if !ok {
		return false
	}
	_, ok = v.g.Field(stage.ParentFieldID)
	return ok
}

func (v *run) checkHierarchy() {
	for _, s := range v.g.Stages() {
		if _, ok := v.g.Field(s.ParentFieldID); ok {
			continue
		}
		if kind, exists := v.g.Kind(s.ParentFieldID); exists {
			v.c.fail(StageInvalidParent, "", map[string]any{
				"stage":      s.Name,
				"parentId":   s.ParentFieldID,
				"parentKind": string(kind),
			}, s.ID)
			continue
		}
		v.c.fail(StageOutsideField, "", map[string]any{"stage": s.Name}, s.ID)
	}

	for _, n := range v.g.Games() {
		if !v.stageChainOK(n.ParentStageID) {
			v.c.fail(GameOutsideContainer, "", map[string]any{"standing": n.Standing}, n.ID)
		}
	}

	for _, t := range v.g.Teams() {
		if t.ParentStageID == "" {
			continue
		}
		if !v.stageChainOK(t.ParentStageID) {
			v.c.fail(TeamOutsideContainer, "", map[string]any{"team": t.Label}, t.ID)
		}
	}
}
