package realtime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/realtime"
)

func register(t *testing.T, hub *realtime.Hub, room string) *realtime.Client {
	t.Helper()
	c := &realtime.Client{Hub: hub, Send: make(chan []byte, 4), Room: room}
	hub.Register <- c
	return c
}

func TestHub_BroadcastStaysInRoom(t *testing.T) {
	hub := realtime.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	room := realtime.RoomForSession("s1")
	a := register(t, hub, room)
	b := register(t, hub, realtime.RoomForSession("s2"))
	require.Eventually(t, func() bool { return hub.RoomSize(room) == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastToRoom(room, realtime.WebSocketMessage{Type: realtime.MessageValidationUpdated, RoomID: room})

	var msg realtime.WebSocketMessage
	require.NoError(t, json.Unmarshal(<-a.Send, &msg))
	assert.Equal(t, realtime.MessageValidationUpdated, msg.Type)
	assert.Equal(t, room, msg.RoomID)
	assert.Empty(t, b.Send)
}

func TestHub_CloseRoom(t *testing.T) {
	hub := realtime.NewHub(nil)
	go hub.Run()
	defer hub.Stop()

	room := realtime.RoomForSession("s1")
	c := register(t, hub, room)
	require.Eventually(t, func() bool { return hub.RoomSize(room) == 1 }, time.Second, 5*time.Millisecond)

	hub.CloseRoom(room)
	assert.Equal(t, 0, hub.RoomSize(room))

	var msg realtime.WebSocketMessage
	require.NoError(t, json.Unmarshal(<-c.Send, &msg))
	assert.Equal(t, realtime.MessageSessionClosed, msg.Type)
	_, open := <-c.Send
	assert.False(t, open, "send channel is closed")

	// broadcasting to a closed room is a no-op
	hub.BroadcastToRoom(room, realtime.WebSocketMessage{Type: realtime.MessageValidationUpdated})
}
