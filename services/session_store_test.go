package services_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/timing"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore(clock *fakeClock) *services.SessionStore {
	return services.NewSessionStore(services.SessionStoreConfig{
		TTL:    time.Hour,
		Engine: timing.NewEngine(70, 10),
		Now:    clock.Now,
	})
}

func TestSessionStore_CreateGetDelete(t *testing.T) {
	store := newStore(&fakeClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)})

	s := store.Create("", nil)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "Untitled schedule", s.Name)

	got, err := store.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	var evicted []string
	store.OnEvict(func(id string) { evicted = append(evicted, id) })

	require.NoError(t, store.Delete(s.ID))
	assert.Equal(t, []string{s.ID}, evicted)
	assert.Equal(t, 0, store.Len())

	_, err = store.Get(s.ID)
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(s.ID), services.ErrSessionNotFound)
}

func TestSessionStore_SweepEvictsIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	store := newStore(clock)

	idle := store.Create("idle", nil)
	active := store.Create("active", nil)

	var evicted []string
	store.OnEvict(func(id string) { evicted = append(evicted, id) })

	clock.Advance(50 * time.Minute)
	_, err := store.Get(active.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, store.Sweep())

	clock.Advance(20 * time.Minute)
	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, []string{idle.ID}, evicted)

	_, err = store.Get(idle.ID)
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
	_, err = store.Get(active.ID)
	assert.NoError(t, err)
}

func TestSessionStore_List(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	store := newStore(clock)

	first := store.Create("first", nil)
	clock.Advance(time.Minute)
	second := store.Create("second", nil)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
	assert.Equal(t, 0, list[0].Games)
}

func TestSession_UpdateValidates(t *testing.T) {
	store := newStore(&fakeClock{now: time.Now()})
	s := store.Create("cup", nil)

	res, err := s.Update(func(d *services.Designer) error {
		_, err := d.AddGame("", services.GameAttrs{Standing: "Game 1"})
		return err
	})
	require.NoError(t, err)
	assert.False(t, res.IsValid, "a game without teams is incomplete")
	assert.Same(t, res, s.Validate(), "unchanged graph returns the cached result")

	_, err = s.Update(func(d *services.Designer) error {
		return d.DeleteEdge("missing")
	})
	assert.ErrorIs(t, err, services.ErrEdgeNotFound)

	s.View(func(g *models.Graph) {
		assert.Len(t, g.Games(), 1)
		assert.Len(t, g.Fields(), 1)
	})
	assert.Equal(t, 1, s.Info().Games)
}

func TestSessionStore_StartStop(t *testing.T) {
	store := services.NewSessionStore(services.SessionStoreConfig{SweepInterval: time.Hour})
	require.NoError(t, store.Start())
	assert.NoError(t, store.Stop())
	assert.NoError(t, store.Stop())
}
