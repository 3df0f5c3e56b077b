package routes_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/Dosada05/tournament-scheduler/docs"
	"github.com/Dosada05/tournament-scheduler/handlers"
	"github.com/Dosada05/tournament-scheduler/realtime"
	"github.com/Dosada05/tournament-scheduler/routes"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/timing"
)

var secret = []byte("routes-secret")

func newRouter() http.Handler {
	engine := timing.NewEngine(70, 10)
	store := services.NewSessionStore(services.SessionStoreConfig{Engine: engine})
	svc := services.NewScheduleService(store, nil, nil, nil, nil)
	hub := realtime.NewHub(nil)

	router := chi.NewRouter()
	routes.SetupRoutes(router,
		routes.Options{JWTSecret: secret, AllowedOrigins: []string{"https://planner.example"}},
		handlers.NewSessionHandler(svc, hub, nil),
		handlers.NewScheduleHandler(svc, engine),
		handlers.NewWebSocketHandler(hub, store, []string{"https://planner.example"}, nil),
	)
	return router
}

func token(t *testing.T, role string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 7,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)
	return "Bearer " + s
}

func serve(h http.Handler, method, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(""))
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_PublicReads(t *testing.T) {
	h := newRouter()

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/v1/templates", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/v1/sessions", "").Code)
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/v1/schedules", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/v1/sessions/unknown", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/ws/sessions/unknown", "").Code)
}

func TestRoutes_MutationsRequireOrganizer(t *testing.T) {
	h := newRouter()

	assert.Equal(t, http.StatusUnauthorized, serve(h, http.MethodPost, "/api/v1/sessions", "").Code)
	assert.Equal(t, http.StatusForbidden, serve(h, http.MethodPost, "/api/v1/sessions", token(t, "player")).Code)
	assert.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/sessions", token(t, "organizer")).Code)
	assert.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/api/v1/sessions", token(t, "admin")).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, http.MethodDelete, "/api/v1/schedules/cup", "").Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	h := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "https://planner.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://planner.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRoutes_SwaggerDocument(t *testing.T) {
	rec := serve(newRouter(), http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/sessions/{sessionID}/edges")
}
