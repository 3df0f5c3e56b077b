package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/handlers"
	"github.com/Dosada05/tournament-scheduler/realtime"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/timing"
)

type recordingHub struct {
	mu       sync.Mutex
	rooms    []string
	messages []realtime.WebSocketMessage
}

func (h *recordingHub) BroadcastToRoom(roomID string, message interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rooms = append(h.rooms, roomID)
	h.messages = append(h.messages, message.(realtime.WebSocketMessage))
}

type fixture struct {
	router  chi.Router
	service *services.ScheduleService
	hub     *recordingHub
}

func newFixture() *fixture {
	engine := timing.NewEngine(60, 10)
	store := services.NewSessionStore(services.SessionStoreConfig{TTL: time.Hour, Engine: engine})
	svc := services.NewScheduleService(store, nil, nil, nil, nil)
	hub := &recordingHub{}
	sh := handlers.NewSessionHandler(svc, hub, nil)
	ch := handlers.NewScheduleHandler(svc, engine)

	r := chi.NewRouter()
	r.Post("/sessions", sh.CreateSession)
	r.Post("/sessions/import", sh.ImportSession)
	r.Post("/sessions/generate", sh.GenerateSession)
	r.Get("/sessions/{sessionID}", sh.GetSession)
	r.Get("/sessions/{sessionID}/export", sh.ExportSession)
	r.Post("/sessions/{sessionID}/save", sh.SaveSession)
	r.Post("/sessions/{sessionID}/games", sh.AddGame)
	r.Patch("/sessions/{sessionID}/games/{gameID}", sh.UpdateGame)
	r.Post("/sessions/{sessionID}/teams", sh.AddTeam)
	r.Put("/sessions/{sessionID}/games/{gameID}/slots/{slot}", sh.AssignTeam)
	r.Delete("/sessions/{sessionID}/nodes/{nodeID}", sh.DeleteNode)
	r.Post("/sessions/{sessionID}/edges", sh.AddEdge)
	r.Get("/templates", ch.ListTemplates)
	r.Post("/validate", ch.ValidateDocument)
	return &fixture{router: r, service: svc, hub: hub}
}

func (f *fixture) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var out map[string]interface{}
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func resultID(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok, "response has a result object: %v", body)
	id, ok := result["id"].(string)
	require.True(t, ok)
	return id
}

func TestSessionHandler_EditFlow(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodPost, "/sessions", `{"name":"Cup"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	sessionID := body["id"].(string)
	base := "/sessions/" + sessionID

	rec, body = f.do(t, http.MethodPost, base+"/games", `{"standing":"Final"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	gameID := resultID(t, body)
	validation := body["validation"].(map[string]interface{})
	assert.Equal(t, false, validation["is_valid"])

	require.Len(t, f.hub.messages, 1)
	assert.Equal(t, realtime.RoomForSession(sessionID), f.hub.rooms[0])
	assert.Equal(t, realtime.MessageValidationUpdated, f.hub.messages[0].Type)

	var teams []string
	for _, label := range []string{"Red", "Blue"} {
		rec, body = f.do(t, http.MethodPost, base+"/teams", `{"label":"`+label+`"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		teams = append(teams, resultID(t, body))
	}
	rec, _ = f.do(t, http.MethodPut, base+"/games/"+gameID+"/slots/home", `{"team_id":"`+teams[0]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, body = f.do(t, http.MethodPut, base+"/games/"+gameID+"/slots/away", `{"team_id":"`+teams[1]+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["validation"].(map[string]interface{})["is_valid"])

	rec, _ = f.do(t, http.MethodPatch, base+"/games/"+gameID, `{"start_time":"14:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, base+"/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "cup.json")
	assert.JSONEq(t,
		`[{"field":"Field 1","games":[{"stage":"Stage 1","standing":"Final","home":"Red","away":"Blue","official":"","break_after":10}]}]`,
		rec.Body.String())

	rec, body = f.do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	doc := body["document"].(map[string]interface{})
	games := doc["games"].([]interface{})
	require.Len(t, games, 1)
	assert.Equal(t, "14:00", games[0].(map[string]interface{})["start_time"])
}

func TestSessionHandler_Errors(t *testing.T) {
	f := newFixture()

	rec, _ := f.do(t, http.MethodGet, "/sessions/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	_, body := f.do(t, http.MethodPost, "/sessions", "")
	base := "/sessions/" + body["id"].(string)

	rec, _ = f.do(t, http.MethodPost, base+"/games", `{"standing":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodPost, base+"/games", `{"standing":"A","colour":"red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodPost, base+"/games", `{"stage_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = f.do(t, http.MethodPost, base+"/games", `{"start_time":"25:99"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = f.do(t, http.MethodPost, base+"/edges",
		`{"source_game_id":"a","output_type":"winner","target_game_id":"b","target_slot":"home"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = f.do(t, http.MethodDelete, base+"/nodes/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Empty(t, f.hub.messages, "failed mutations are not broadcast")
}

func TestSessionHandler_ImportAndSaveInvalid(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodPost, "/sessions/import?name=Liga",
		`[{"field":"A","games":[{"stage":"KO","standing":"F","home":"Gewinner HF","away":"x","official":""}]}]`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Len(t, body["warnings"], 1)
	session := body["session"].(map[string]interface{})
	assert.Equal(t, "Liga", session["name"])

	rec, _ = f.do(t, http.MethodPost, "/sessions/import", `{"field":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// without a repository, saving a valid schedule succeeds with nothing stored;
	// an incomplete one is refused with its validation result
	rec, body = f.do(t, http.MethodPost, "/sessions/import",
		`[{"field":"A","games":[{"stage":"KO","standing":"F","home":"","away":"x","official":""}]}]`)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := body["session"].(map[string]interface{})["id"].(string)
	rec, body = f.do(t, http.MethodPost, "/sessions/"+id+"/save", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotNil(t, body["validation"])
}

func TestSessionHandler_Generate(t *testing.T) {
	f := newFixture()

	rec, body := f.do(t, http.MethodPost, "/sessions/generate",
		`{"name":"Cup","teams":["a","b","c","d","e","f"],"config":{"template":"groups-2x3-playoff"}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["validation"].(map[string]interface{})["is_valid"])

	rec, _ = f.do(t, http.MethodPost, "/sessions/generate",
		`{"teams":["a","b","c"],"config":{"template":"round-robin-6"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = f.do(t, http.MethodPost, "/sessions/generate",
		`{"teams":["a","b"],"config":{"template":"swiss"}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleHandler_TemplatesAndValidate(t *testing.T) {
	f := newFixture()

	rec, _ := f.do(t, http.MethodGet, "/templates", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var templates []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &templates))
	assert.Len(t, templates, 5)

	rec, body := f.do(t, http.MethodPost, "/validate",
		`[{"field":"A","games":[`+
			`{"stage":"s","standing":"1","home":"x","away":"y","official":"x"}]}]`)
	require.Equal(t, http.StatusOK, rec.Code)
	res := body["validation"].(map[string]interface{})
	assert.Equal(t, false, res["is_valid"], "official also plays")

	rec, _ = f.do(t, http.MethodPost, "/validate", `nope`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
