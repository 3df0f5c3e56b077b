package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/realtime"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/validation"
)

// Broadcaster pushes a message to every client of a room.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type SessionHandler struct {
	service *services.ScheduleService
	hub     Broadcaster
	logger  *slog.Logger
}

// NewSessionHandler creates the editing session handlers. hub may be nil.
func NewSessionHandler(service *services.ScheduleService, hub Broadcaster, logger *slog.Logger) *SessionHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionHandler{service: service, hub: hub, logger: logger}
}

type nameInput struct {
	Name string `json:"name"`
}

// ValidationPayload is sent to WebSocket clients after every change.
type ValidationPayload struct {
	SessionID  string             `json:"session_id"`
	Revision   uint64             `json:"revision"`
	Validation *validation.Result `json:"validation"`
}

type mutationResponse struct {
	Result     interface{}        `json:"result,omitempty"`
	Revision   uint64             `json:"revision"`
	Validation *validation.Result `json:"validation"`
}

type sessionDocument struct {
	Session    services.SessionInfo `json:"session"`
	Document   models.Document      `json:"document"`
	Validation *validation.Result   `json:"validation"`
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*services.Session, bool) {
	sess, err := h.service.Sessions().Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return nil, false
	}
	return sess, true
}

// mutate runs fn against the session's designer, answers with the validation
// result and pushes it to the session's room.
func (h *SessionHandler) mutate(w http.ResponseWriter, r *http.Request, status int, fn func(d *services.Designer) (interface{}, error)) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var (
		result   interface{}
		revision uint64
	)
	res, err := sess.Update(func(d *services.Designer) error {
		var fnErr error
		result, fnErr = fn(d)
		revision = d.Graph().Revision()
		return fnErr
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	h.broadcast(sess.ID, revision, res)
	if err := writeJSON(w, status, mutationResponse{Result: result, Revision: revision, Validation: res}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SessionHandler) broadcast(sessionID string, revision uint64, res *validation.Result) {
	if h.hub == nil {
		return
	}
	room := realtime.RoomForSession(sessionID)
	h.hub.BroadcastToRoom(room, realtime.WebSocketMessage{
		Type:    realtime.MessageValidationUpdated,
		Payload: ValidationPayload{SessionID: sessionID, Revision: revision, Validation: res},
		RoomID:  room,
	})
}

// CreateSession godoc
// @Summary      Open an empty editing session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        input  body      nameInput  false  "Session name"
// @Success      201    {object}  services.SessionInfo
// @Security     BearerAuth
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input nameInput
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}
	sess := h.service.CreateEmpty(input.Name)
	if err := writeJSON(w, http.StatusCreated, sess.Info(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ImportSession godoc
// @Summary      Open a session from a flat JSON schedule document
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        name  query     string  false  "Session name"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /sessions/import [post]
func (h *SessionHandler) ImportSession(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	res, err := h.service.Import(r.URL.Query().Get("name"), data)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	resp := jsonResponse{
		"session":    res.Session.Info(),
		"warnings":   res.Warnings,
		"validation": res.Session.Validate(),
	}
	if err := writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateSession godoc
// @Summary      Generate a tournament from a template into a new session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        input  body      services.GenerateRequest  true  "Template, teams and setup"
// @Success      201    {object}  map[string]interface{}
// @Failure      404    {object}  map[string]interface{}
// @Failure      422    {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /sessions/generate [post]
func (h *SessionHandler) GenerateSession(w http.ResponseWriter, r *http.Request) {
	var input services.GenerateRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	res, err := h.service.Generate(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	resp := jsonResponse{
		"session":    res.Session.Info(),
		"skipped":    res.Tournament.Skipped,
		"operations": len(res.Operations),
		"validation": res.Session.Validate(),
	}
	if err := writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListSessions godoc
// @Summary  List open editing sessions
// @Tags     sessions
// @Produce  json
// @Success  200  {array}  services.SessionInfo
// @Router   /sessions [get]
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, h.service.Sessions().List(), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSession godoc
// @Summary  Get the full graph of a session with its validation result
// @Tags     sessions
// @Produce  json
// @Param    sessionID  path      string  true  "Session ID"
// @Success  200        {object}  sessionDocument
// @Failure  404        {object}  map[string]interface{}
// @Router   /sessions/{sessionID} [get]
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var doc models.Document
	sess.View(func(g *models.Graph) { doc = g.Document() })
	resp := sessionDocument{Session: sess.Info(), Document: doc, Validation: sess.Validate()}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteSession godoc
// @Summary   Close an editing session
// @Tags      sessions
// @Param     sessionID  path  string  true  "Session ID"
// @Success   204
// @Failure   404  {object}  map[string]interface{}
// @Security  BearerAuth
// @Router    /sessions/{sessionID} [delete]
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Sessions().Delete(chi.URLParam(r, "sessionID")); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateSession godoc
// @Summary  Validate the schedule of a session
// @Tags     sessions
// @Produce  json
// @Param    sessionID  path      string  true  "Session ID"
// @Success  200        {object}  validation.Result
// @Router   /sessions/{sessionID}/validation [get]
func (h *SessionHandler) ValidateSession(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Validate(chi.URLParam(r, "sessionID"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, res, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportSession godoc
// @Summary  Export a session as a flat JSON schedule document
// @Tags     sessions
// @Produce  json
// @Param    sessionID  path  string  true  "Session ID"
// @Success  200        {array}  interchange.FieldRecord
// @Router   /sessions/{sessionID}/export [get]
func (h *SessionHandler) ExportSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	data, err := h.service.Export(sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	sess, err := h.service.Sessions().Get(sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ScheduleSlug(sess.Name)+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// SaveSession godoc
// @Summary      Save a valid schedule to the database and object storage
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string     true   "Session ID"
// @Param        input      body      nameInput  false  "Name to save under"
// @Success      200        {object}  models.SavedSchedule
// @Failure      422        {object}  map[string]interface{}
// @Security     BearerAuth
// @Router       /sessions/{sessionID}/save [post]
func (h *SessionHandler) SaveSession(w http.ResponseWriter, r *http.Request) {
	var input nameInput
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &input); err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}
	sessionID := chi.URLParam(r, "sessionID")
	saved, err := h.service.Save(r.Context(), sessionID, input.Name)
	if err != nil {
		if errors.Is(err, services.ErrScheduleInvalid) {
			res, _ := h.service.Validate(sessionID)
			_ = writeJSON(w, http.StatusUnprocessableEntity, jsonResponse{"error": err.Error(), "validation": res}, nil)
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, saved, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type addFieldInput struct {
	services.FieldAttrs
	WithDefaultStage bool `json:"with_default_stage"`
}

// AddField godoc
// @Summary   Add a field
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string         true  "Session ID"
// @Param     input      body  addFieldInput  true  "Field attributes"
// @Success   201  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/fields [post]
func (h *SessionHandler) AddField(w http.ResponseWriter, r *http.Request) {
	var input addFieldInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		return d.AddField(input.FieldAttrs, input.WithDefaultStage), nil
	})
}

// AddStage godoc
// @Summary   Add a stage to a field
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string               true  "Session ID"
// @Param     fieldID    path  string               true  "Field ID"
// @Param     input      body  services.StageAttrs  true  "Stage attributes"
// @Success   201  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/fields/{fieldID}/stages [post]
func (h *SessionHandler) AddStage(w http.ResponseWriter, r *http.Request) {
	var input services.StageAttrs
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	fieldID := chi.URLParam(r, "fieldID")
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		return d.AddStage(fieldID, input)
	})
}

type addGameInput struct {
	StageID string `json:"stage_id"`
	services.GameAttrs
}

// AddGame godoc
// @Summary      Add a game
// @Description  Without stage_id the game goes to the first stage of the first field, created if missing.
// @Tags         editing
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string        true  "Session ID"
// @Param        input      body  addGameInput  true  "Game attributes"
// @Success      201  {object}  mutationResponse
// @Security     BearerAuth
// @Router       /sessions/{sessionID}/games [post]
func (h *SessionHandler) AddGame(w http.ResponseWriter, r *http.Request) {
	var input addGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		return d.AddGame(input.StageID, input.GameAttrs)
	})
}

type addTeamInput struct {
	StageID string `json:"stage_id"`
	services.TeamAttrs
}

// AddTeam godoc
// @Summary   Add a team to a stage or to the global pool
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string        true  "Session ID"
// @Param     input      body  addTeamInput  true  "Team attributes"
// @Success   201  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/teams [post]
func (h *SessionHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	var input addTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		return d.AddTeam(input.StageID, input.TeamAttrs)
	})
}

// AddTeamGroup godoc
// @Summary   Add a team group
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string               true  "Session ID"
// @Param     input      body  services.GroupAttrs  true  "Group attributes"
// @Success   201  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/groups [post]
func (h *SessionHandler) AddTeamGroup(w http.ResponseWriter, r *http.Request) {
	var input services.GroupAttrs
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		return d.AddTeamGroup(input), nil
	})
}

type teamGroupInput struct {
	GroupID string `json:"group_id"`
}

// SetTeamGroup godoc
// @Summary   Move a team into a group; an empty group_id removes it from its group
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string          true  "Session ID"
// @Param     teamID     path  string          true  "Team ID"
// @Param     input      body  teamGroupInput  true  "Group"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/teams/{teamID}/group [put]
func (h *SessionHandler) SetTeamGroup(w http.ResponseWriter, r *http.Request) {
	var input teamGroupInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID := chi.URLParam(r, "teamID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.SetTeamGroup(teamID, input.GroupID)
	})
}

// UpdateGame godoc
// @Summary   Change game attributes
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string              true  "Session ID"
// @Param     gameID     path  string              true  "Game ID"
// @Param     input      body  services.GamePatch  true  "Changed attributes"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/games/{gameID} [patch]
func (h *SessionHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	var input services.GamePatch
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	gameID := chi.URLParam(r, "gameID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.UpdateGame(gameID, input)
	})
}

// UpdateStage godoc
// @Summary   Change stage attributes
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string               true  "Session ID"
// @Param     stageID    path  string               true  "Stage ID"
// @Param     input      body  services.StagePatch  true  "Changed attributes"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/stages/{stageID} [patch]
func (h *SessionHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	var input services.StagePatch
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	stageID := chi.URLParam(r, "stageID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.UpdateStage(stageID, input)
	})
}

// DeleteNode godoc
// @Summary      Delete a node and everything it contains
// @Description  Removes all edges touching the removed nodes and clears dynamic references into them.
// @Tags         editing
// @Produce      json
// @Param        sessionID  path  string  true  "Session ID"
// @Param        nodeID     path  string  true  "Node ID"
// @Success      200  {object}  mutationResponse
// @Security     BearerAuth
// @Router       /sessions/{sessionID}/nodes/{nodeID} [delete]
func (h *SessionHandler) DeleteNode(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return d.DeleteNode(nodeID)
	})
}

type moveInput struct {
	StageID string `json:"stage_id"`
}

// MoveNode godoc
// @Summary   Move a game or team to another stage
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string     true  "Session ID"
// @Param     nodeID     path  string     true  "Game or team ID"
// @Param     input      body  moveInput  true  "Target stage"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/nodes/{nodeID}/move [post]
func (h *SessionHandler) MoveNode(w http.ResponseWriter, r *http.Request) {
	var input moveInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	nodeID := chi.URLParam(r, "nodeID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.MoveNodeToStage(nodeID, input.StageID)
	})
}

// PlanContainers godoc
// @Summary  Show where a new game would be placed for a selection
// @Tags     editing
// @Produce  json
// @Param    sessionID  path      string  true   "Session ID"
// @Param    node_id    query     string  false  "Selected node"
// @Success  200        {object}  services.ContainerPlan
// @Router   /sessions/{sessionID}/containers [get]
func (h *SessionHandler) PlanContainers(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var plan services.ContainerPlan
	sel := services.Selection{NodeID: r.URL.Query().Get("node_id")}
	sess.View(func(g *models.Graph) { plan = services.ResolveContainers(sel, g) })
	if err := writeJSON(w, http.StatusOK, plan, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// EnsureContainers godoc
// @Summary   Create the field and stage a new game needs for a selection
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string              true  "Session ID"
// @Param     input      body  services.Selection  true  "Selection"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/containers [post]
func (h *SessionHandler) EnsureContainers(w http.ResponseWriter, r *http.Request) {
	var input services.Selection
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		fieldID, stageID := d.EnsureContainerHierarchy(input)
		return jsonResponse{"field_id": fieldID, "stage_id": stageID}, nil
	})
}

// AddEdge godoc
// @Summary      Feed the winner or loser of a game into a slot of another game
// @Description  Replaces any existing source of the target slot.
// @Tags         edges
// @Accept       json
// @Produce      json
// @Param        sessionID  path  string           true  "Session ID"
// @Param        input      body  models.EdgeSpec  true  "Edge"
// @Success      201  {object}  mutationResponse
// @Security     BearerAuth
// @Router       /sessions/{sessionID}/edges [post]
func (h *SessionHandler) AddEdge(w http.ResponseWriter, r *http.Request) {
	var input models.EdgeSpec
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		id, err := d.AddGameToGameEdge(input.SourceGameID, input.OutputType, input.TargetGameID, input.TargetSlot)
		if err != nil {
			return nil, err
		}
		return jsonResponse{"id": id}, nil
	})
}

// AddEdges godoc
// @Summary   Add several game edges as one unit
// @Tags      edges
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string             true  "Session ID"
// @Param     input      body  []models.EdgeSpec  true  "Edges"
// @Success   201  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/edges/bulk [post]
func (h *SessionHandler) AddEdges(w http.ResponseWriter, r *http.Request) {
	var input []models.EdgeSpec
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusCreated, func(d *services.Designer) (interface{}, error) {
		ids, err := d.AddBulkGameToGameEdges(input)
		if err != nil {
			return nil, err
		}
		return jsonResponse{"ids": ids}, nil
	})
}

// DeleteEdge godoc
// @Summary   Delete an edge
// @Tags      edges
// @Produce   json
// @Param     sessionID  path  string  true  "Session ID"
// @Param     edgeID     path  string  true  "Edge ID"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/edges/{edgeID} [delete]
func (h *SessionHandler) DeleteEdge(w http.ResponseWriter, r *http.Request) {
	edgeID := chi.URLParam(r, "edgeID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.DeleteEdge(edgeID)
	})
}

type teamInput struct {
	TeamID *string `json:"team_id"`
}

// AssignTeam godoc
// @Summary   Put a team into the home or away slot of a game
// @Tags      edges
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string     true  "Session ID"
// @Param     gameID     path  string     true  "Game ID"
// @Param     slot       path  string     true  "home or away"
// @Param     input      body  teamInput  true  "Team"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/games/{gameID}/slots/{slot} [put]
func (h *SessionHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	var input teamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.TeamID == nil || *input.TeamID == "" {
		badRequestResponse(w, r, errors.New("team_id is required"))
		return
	}
	gameID, slot := chi.URLParam(r, "gameID"), models.Slot(chi.URLParam(r, "slot"))
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.AssignTeamToGame(gameID, slot, *input.TeamID)
	})
}

// ClearSlot godoc
// @Summary   Empty a slot, removing its team or the game edge feeding it
// @Tags      edges
// @Produce   json
// @Param     sessionID  path  string  true  "Session ID"
// @Param     gameID     path  string  true  "Game ID"
// @Param     slot       path  string  true  "home or away"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/games/{gameID}/slots/{slot} [delete]
func (h *SessionHandler) ClearSlot(w http.ResponseWriter, r *http.Request) {
	gameID, slot := chi.URLParam(r, "gameID"), models.Slot(chi.URLParam(r, "slot"))
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.UnassignTeam(gameID, slot)
	})
}

// SetOfficial godoc
// @Summary   Set or clear the officiating team of a game
// @Tags      edges
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string     true  "Session ID"
// @Param     gameID     path  string     true  "Game ID"
// @Param     input      body  teamInput  true  "Team, null to clear"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/games/{gameID}/official [put]
func (h *SessionHandler) SetOfficial(w http.ResponseWriter, r *http.Request) {
	var input teamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	gameID := chi.URLParam(r, "gameID")
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.SetOfficial(gameID, input.TeamID)
	})
}

// ApplyOperations godoc
// @Summary   Apply assign_team and add_edges operations, all or nothing
// @Tags      editing
// @Accept    json
// @Produce   json
// @Param     sessionID  path  string              true  "Session ID"
// @Param     input      body  []models.Operation  true  "Operations"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/operations [post]
func (h *SessionHandler) ApplyOperations(w http.ResponseWriter, r *http.Request) {
	var input []models.Operation
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return nil, d.ApplyOperations(input)
	})
}

// Recalculate godoc
// @Summary   Re-run start time propagation
// @Tags      editing
// @Produce   json
// @Param     sessionID  path  string  true  "Session ID"
// @Success   200  {object}  mutationResponse
// @Security  BearerAuth
// @Router    /sessions/{sessionID}/recalculate [post]
func (h *SessionHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, http.StatusOK, func(d *services.Designer) (interface{}, error) {
		return jsonResponse{"changed": d.Recalculate()}, nil
	})
}
