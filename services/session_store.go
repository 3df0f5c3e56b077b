package services

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/timing"
	"github.com/Dosada05/tournament-scheduler/validation"
)

// Session is one in-memory editing session. All access to its graph goes
// through Update or View, which serialize callers.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time

	mu         sync.Mutex
	designer   *Designer
	validator  *validation.Validator
	lastAccess time.Time
}

// SessionInfo is the listing view of a session.
type SessionInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	LastAccess time.Time `json:"last_access"`
	Revision   uint64    `json:"revision"`
	Games      int       `json:"games"`
}

// Update runs fn with the session's designer and returns the validation
// result of the graph afterwards, also when fn fails.
func (s *Session) Update(fn func(d *Designer) error) (*validation.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.designer)
	return s.validator.Validate(s.designer.Graph()), err
}

// View runs fn with read access to the graph.
func (s *Session) View(fn func(g *models.Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.designer.Graph())
}

// Validate returns the cached validation result of the current graph.
func (s *Session) Validate() *validation.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validator.Validate(s.designer.Graph())
}

func (s *Session) Info() SessionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionInfo{
		ID:         s.ID,
		Name:       s.Name,
		CreatedAt:  s.CreatedAt,
		LastAccess: s.lastAccess,
		Revision:   s.designer.Graph().Revision(),
		Games:      len(s.designer.Graph().Games()),
	}
}

type SessionStoreConfig struct {
	// TTL is how long a session may stay untouched before it is evicted.
	TTL               time.Duration
	SweepInterval     time.Duration
	Engine            timing.Engine
	ValidationOptions validation.Options
	Logger            *slog.Logger
	Now               func() time.Time
}

// SessionStore keeps editing sessions in memory and evicts idle ones.
type SessionStore struct {
	cfg    SessionStoreConfig
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
	onEvict  []func(id string)

	scheduler gocron.Scheduler
}

func NewSessionStore(cfg SessionStoreConfig) *SessionStore {
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.Engine.DefaultDuration <= 0 {
		cfg.Engine = timing.NewEngine(70, 10)
	}
	if cfg.ValidationOptions.DefaultDuration <= 0 {
		cfg.ValidationOptions.DefaultDuration = cfg.Engine.DefaultDuration
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &SessionStore{
		cfg:      cfg,
		logger:   cfg.Logger,
		sessions: make(map[string]*Session),
	}
}

// OnEvict registers fn to be called with the id of every session removed by
// Delete or by the idle sweep.
func (st *SessionStore) OnEvict(fn func(id string)) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.onEvict = append(st.onEvict, fn)
}

// Create opens a session over g; a nil graph starts empty.
func (st *SessionStore) Create(name string, g *models.Graph) *Session {
	now := st.cfg.Now()
	s := &Session{
		ID:         uuid.NewString(),
		Name:       name,
		CreatedAt:  now,
		designer:   NewDesigner(g, st.cfg.Engine, st.logger),
		validator:  validation.NewValidator(st.cfg.ValidationOptions),
		lastAccess: now,
	}
	if s.Name == "" {
		s.Name = "Untitled schedule"
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	st.logger.Info("session created", slog.String("session_id", s.ID), slog.String("name", s.Name))
	return s
}

// Get returns a session and marks it as used.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	s.mu.Lock()
	s.lastAccess = st.cfg.Now()
	s.mu.Unlock()
	return s, nil
}

// List returns all sessions, oldest first.
func (st *SessionStore) List() []SessionInfo {
	st.mu.RLock()
	out := make([]SessionInfo, 0, len(st.sessions))
	for _, s := range st.sessions {
		out = append(out, s.Info())
	}
	st.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *SessionStore) Delete(id string) error {
	st.mu.Lock()
	if _, ok := st.sessions[id]; !ok {
		st.mu.Unlock()
		return fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	delete(st.sessions, id)
	hooks := st.onEvict
	st.mu.Unlock()

	for _, fn := range hooks {
		fn(id)
	}
	st.logger.Info("session deleted", slog.String("session_id", id))
	return nil
}

// Sweep evicts every session idle for longer than the TTL and returns how
// many were removed.
func (st *SessionStore) Sweep() int {
	cutoff := st.cfg.Now().Add(-st.cfg.TTL)

	st.mu.Lock()
	var expired []string
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastAccess.Before(cutoff)
		s.mu.Unlock()
		if idle {
			expired = append(expired, id)
			delete(st.sessions, id)
		}
	}
	hooks := st.onEvict
	st.mu.Unlock()

	for _, id := range expired {
		for _, fn := range hooks {
			fn(id)
		}
		st.logger.Info("session expired", slog.String("session_id", id))
	}
	return len(expired)
}

// Start runs Sweep every SweepInterval until Stop.
func (st *SessionStore) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create session scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(st.cfg.SweepInterval),
		gocron.NewTask(func() {
			if n := st.Sweep(); n > 0 {
				st.logger.Debug("idle sessions swept", slog.Int("count", n))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	sched.Start()
	st.scheduler = sched
	st.logger.Info("session sweeper started",
		slog.Duration("ttl", st.cfg.TTL),
		slog.Duration("interval", st.cfg.SweepInterval),
	)
	return nil
}

func (st *SessionStore) Stop() error {
	if st.scheduler == nil {
		return nil
	}
	err := st.scheduler.Shutdown()
	st.scheduler = nil
	return err
}
