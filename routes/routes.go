package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/tournament-scheduler/handlers"
	"github.com/Dosada05/tournament-scheduler/middleware"
)

// Options carries what the router needs besides the handlers.
type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

func SetupRoutes(
	router chi.Router,
	opts Options,
	sessionHandler *handlers.SessionHandler,
	scheduleHandler *handlers.ScheduleHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/sessions/{sessionID}", webSocketHandler.ServeWs)

	authenticate := middleware.Authenticate(opts.JWTSecret)
	editors := middleware.Authorize(middleware.RoleOrganizer, middleware.RoleAdmin)

	router.Route("/api/v1", func(r chi.Router) {
		// Публичные маршруты только для чтения
		r.Get("/templates", scheduleHandler.ListTemplates)
		r.Post("/validate", scheduleHandler.ValidateDocument)
		r.Get("/schedules", scheduleHandler.ListSaved)

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/", sessionHandler.ListSessions)
			r.Get("/{sessionID}", sessionHandler.GetSession)
			r.Get("/{sessionID}/validation", sessionHandler.ValidateSession)
			r.Get("/{sessionID}/export", sessionHandler.ExportSession)
			r.Get("/{sessionID}/containers", sessionHandler.PlanContainers)

			// Изменения доступны только организаторам
			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(editors)

				r.Post("/", sessionHandler.CreateSession)
				r.Post("/import", sessionHandler.ImportSession)
				r.Post("/generate", sessionHandler.GenerateSession)
				r.Delete("/{sessionID}", sessionHandler.DeleteSession)
				r.Post("/{sessionID}/save", sessionHandler.SaveSession)

				r.Post("/{sessionID}/fields", sessionHandler.AddField)
				r.Post("/{sessionID}/fields/{fieldID}/stages", sessionHandler.AddStage)
				r.Patch("/{sessionID}/stages/{stageID}", sessionHandler.UpdateStage)
				r.Post("/{sessionID}/games", sessionHandler.AddGame)
				r.Patch("/{sessionID}/games/{gameID}", sessionHandler.UpdateGame)
				r.Put("/{sessionID}/games/{gameID}/slots/{slot}", sessionHandler.AssignTeam)
				r.Delete("/{sessionID}/games/{gameID}/slots/{slot}", sessionHandler.ClearSlot)
				r.Put("/{sessionID}/games/{gameID}/official", sessionHandler.SetOfficial)
				r.Post("/{sessionID}/teams", sessionHandler.AddTeam)
				r.Put("/{sessionID}/teams/{teamID}/group", sessionHandler.SetTeamGroup)
				r.Post("/{sessionID}/groups", sessionHandler.AddTeamGroup)
				r.Delete("/{sessionID}/nodes/{nodeID}", sessionHandler.DeleteNode)
				r.Post("/{sessionID}/nodes/{nodeID}/move", sessionHandler.MoveNode)
				r.Post("/{sessionID}/containers", sessionHandler.EnsureContainers)
				r.Post("/{sessionID}/edges", sessionHandler.AddEdge)
				r.Post("/{sessionID}/edges/bulk", sessionHandler.AddEdges)
				r.Delete("/{sessionID}/edges/{edgeID}", sessionHandler.DeleteEdge)
				r.Post("/{sessionID}/operations", sessionHandler.ApplyOperations)
				r.Post("/{sessionID}/recalculate", sessionHandler.Recalculate)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(editors)

			r.Post("/schedules/{slug}/open", scheduleHandler.OpenSaved)
			r.Delete("/schedules/{slug}", scheduleHandler.DeleteSaved)
		})
	})
}
