package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Dosada05/tournament-scheduler/realtime"
	"github.com/Dosada05/tournament-scheduler/services"
)

type WebSocketHandler struct {
	hub      *realtime.Hub
	sessions *services.SessionStore
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewWebSocketHandler accepts connections from allowedOrigins; "*" allows any
// origin.
func NewWebSocketHandler(hub *realtime.Hub, sessions *services.SessionStore, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocketHandler{
		hub:      hub,
		sessions: sessions,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// Не браузерные клиенты не присылают Origin
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// ServeWs подключает клиента к комнате сессии редактирования.
// Клиент должен подключаться к /ws/sessions/{sessionID}
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отправляет HTTP ошибку клиенту
		h.logger.Warn("websocket upgrade failed", slog.String("session_id", sessionID), slog.Any("error", err))
		return
	}

	room := realtime.RoomForSession(sessionID)
	client := &realtime.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: room,
	}

	// Текущее состояние валидации уходит первым сообщением
	msg, err := json.Marshal(realtime.WebSocketMessage{
		Type:    realtime.MessageValidationUpdated,
		Payload: ValidationPayload{SessionID: sessionID, Revision: sess.Info().Revision, Validation: sess.Validate()},
		RoomID:  room,
	})
	if err == nil {
		client.Send <- msg
	}

	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	h.logger.Info("websocket client connected", slog.String("session_id", sessionID))
}
