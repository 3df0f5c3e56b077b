package services

import "github.com/Dosada05/tournament-scheduler/models"

// Selection is the node the user currently has selected, if any.
type Selection struct {
	NodeID string `json:"node_id"`
}

// ContainerPlan says where the next game or team goes and which containers
// must be created first. A Create flag with an empty id means "create new".
type ContainerPlan struct {
	FieldID     string `json:"field_id"`
	StageID     string `json:"stage_id"`
	CreateField bool   `json:"create_field"`
	CreateStage bool   `json:"create_stage"`
}

// ResolveContainers is a pure function of the selection and the existing
// hierarchy. Resolution order: the selected stage (or the stage of a selected
// game or team); the first stage of the selected field; the first stage of the
// first field; a new field with a new stage.
func ResolveContainers(sel Selection, g *models.Graph) ContainerPlan {
	if sel.NodeID != "" {
		if kind, ok := g.Kind(sel.NodeID); ok {
			switch kind {
			case models.KindStage:
				if plan, ok := stagePlan(g, sel.NodeID); ok {
					return plan
				}
			case models.KindGame:
				n, _ := g.Game(sel.NodeID)
				if plan, ok := stagePlan(g, n.ParentStageID); ok {
					return plan
				}
			case models.KindTeam:
				t, _ := g.Team(sel.NodeID)
				if plan, ok := stagePlan(g, t.ParentStageID); ok {
					return plan
				}
			case models.KindField:
				return fieldPlan(g, sel.NodeID)
			}
		}
	}
	if fields := g.Fields(); len(fields) > 0 {
		return fieldPlan(g, fields[0].ID)
	}
	return ContainerPlan{CreateField: true, CreateStage: true}
}

func stagePlan(g *models.Graph, stageID string) (ContainerPlan, bool) {
	s, ok := g.Stage(stageID)
	if !ok {
		return ContainerPlan{}, false
	}
	if _, ok := g.Field(s.ParentFieldID); !ok {
		return ContainerPlan{}, false
	}
	return ContainerPlan{FieldID: s.ParentFieldID, StageID: s.ID}, true
}

func fieldPlan(g *models.Graph, fieldID string) ContainerPlan {
	if stages := g.FieldStages(fieldID); len(stages) > 0 {
		return ContainerPlan{FieldID: fieldID, StageID: stages[0].ID}
	}
	return ContainerPlan{FieldID: fieldID, CreateStage: true}
}

// EnsureContainerHierarchy applies ResolveContainers and returns the field and
// stage to place new content into. With no intervening change, a second call
// returns the same ids and creates nothing.
func (d *Designer) EnsureContainerHierarchy(sel Selection) (fieldID, stageID string) {
	plan := ResolveContainers(sel, d.g)
	fieldID, stageID = plan.FieldID, plan.StageID
	if plan.CreateField {
		fieldID = d.AddField(FieldAttrs{}, false).ID
	}
	if plan.CreateStage {
		s, err := d.AddStage(fieldID, StageAttrs{})
		if err != nil {
			d.logger.Error("ensure container hierarchy", "field_id", fieldID, "error", err)
			return fieldID, ""
		}
		stageID = s.ID
	}
	return fieldID, stageID
}
