package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/interchange"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/repositories"
	"github.com/Dosada05/tournament-scheduler/storage"
	"github.com/Dosada05/tournament-scheduler/validation"
)

// GenerateRequest asks for a tournament generated from a template.
type GenerateRequest struct {
	Name   string          `json:"name"`
	Teams  []string        `json:"teams"`
	Config brackets.Config `json:"config"`
}

// ImportResult is a session created from a flat document.
type ImportResult struct {
	Session  *Session
	Warnings []interchange.Warning
}

// GenerateResult is a session holding a generated tournament.
type GenerateResult struct {
	Session    *Session
	Tournament *brackets.Tournament
	Operations []models.Operation
}

// ScheduleService connects editing sessions to the generator, the interchange
// format and persistence.
type ScheduleService struct {
	sessions  *SessionStore
	generator *brackets.Generator
	repo      repositories.ScheduleRepository
	uploader  storage.FileUploader
	logger    *slog.Logger
}

// NewScheduleService wires the service. repo and uploader may be nil; Save
// then skips the missing target.
func NewScheduleService(
	sessions *SessionStore,
	generator *brackets.Generator,
	repo repositories.ScheduleRepository,
	uploader storage.FileUploader,
	logger *slog.Logger,
) *ScheduleService {
	if generator == nil {
		generator = brackets.NewGenerator(nil, logger)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ScheduleService{
		sessions:  sessions,
		generator: generator,
		repo:      repo,
		uploader:  uploader,
		logger:    logger,
	}
}

func (s *ScheduleService) Sessions() *SessionStore {
	return s.sessions
}

func (s *ScheduleService) Templates() []brackets.Template {
	return s.generator.Catalogue().List()
}

// CreateEmpty opens a session with an empty graph.
func (s *ScheduleService) CreateEmpty(name string) *Session {
	return s.sessions.Create(name, nil)
}

// Import opens a session over a flat JSON schedule document.
func (s *ScheduleService) Import(name string, data []byte) (*ImportResult, error) {
	g, warnings, err := interchange.Import(data, interchange.Options{
		Engine: s.sessions.cfg.Engine,
		Logger: s.logger,
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Session: s.sessions.Create(name, g), Warnings: warnings}, nil
}

// Generate builds a tournament from a template and opens a session holding
// it. Team labels become pool teams; empty labels are numbered.
func (s *ScheduleService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	cfg := req.Config
	// Длительности шаблона важнее настроек сервера
	tmpl, lookupErr := s.generator.Catalogue().Get(cfg.TemplateID)
	if cfg.GameDuration <= 0 && (lookupErr != nil || tmpl.GameDuration <= 0) {
		cfg.GameDuration = s.sessions.cfg.Engine.DefaultDuration
	}
	if cfg.BreakDuration == nil && (lookupErr != nil || tmpl.BreakDuration == nil) {
		b := s.sessions.cfg.Engine.DefaultBreak
		cfg.BreakDuration = &b
	}
	cfg.IDFunc = func(string) string { return uuid.NewString() }

	d := NewDesigner(nil, s.sessions.cfg.Engine, s.logger)
	teams := make([]*models.Team, 0, len(req.Teams))
	for _, label := range req.Teams {
		t, err := d.AddTeam("", TeamAttrs{Label: strings.TrimSpace(label)})
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	t, err := s.generator.GenerateTournament(ctx, teams, cfg)
	if err != nil {
		return nil, err
	}
	ops := s.generator.AssignTeams(t, teams)
	if err := d.ApplyTournament(t, ops); err != nil {
		return nil, fmt.Errorf("apply generated tournament: %w", err)
	}

	name := req.Name
	if name == "" {
		name = t.Template
	}
	return &GenerateResult{
		Session:    s.sessions.Create(name, d.Graph()),
		Tournament: t,
		Operations: ops,
	}, nil
}

// Export returns the flat JSON document of a session.
func (s *ScheduleService) Export(sessionID string) ([]byte, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	var (
		data []byte
		mErr error
	)
	sess.View(func(g *models.Graph) {
		data, mErr = interchange.Marshal(g)
	})
	return data, mErr
}

// Validate returns the validation result of a session's graph.
func (s *ScheduleService) Validate(sessionID string) (*validation.Result, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Validate(), nil
}

// Save stores the flat document of a session in the database and, when an
// uploader is configured, in object storage. Schedules with validation
// errors are refused with ErrScheduleInvalid.
func (s *ScheduleService) Save(ctx context.Context, sessionID, name string) (*models.SavedSchedule, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = sess.Name
	}
	if res := sess.Validate(); !res.IsValid {
		return nil, fmt.Errorf("%w: %d error(s)", ErrScheduleInvalid, len(res.Errors))
	}
	data, err := s.Export(sessionID)
	if err != nil {
		return nil, err
	}

	saved := &models.SavedSchedule{
		Slug:     ScheduleSlug(name),
		Name:     name,
		Document: json.RawMessage(data),
	}
	if s.uploader != nil {
		key := storage.ScheduleKey(name)
		url := s.uploader.GetPublicURL(key)
		saved.StorageKey = &key
		saved.PublicURL = &url
	}

	g, gCtx := errgroup.WithContext(ctx)

	if s.repo != nil {
		g.Go(func() error {
			if err := s.repo.Save(gCtx, saved); err != nil {
				return fmt.Errorf("failed to store schedule %q: %w", saved.Slug, err)
			}
			return nil
		})
	}
	if s.uploader != nil {
		g.Go(func() error {
			if _, err := s.uploader.Upload(gCtx, *saved.StorageKey, storage.ScheduleContentType, bytes.NewReader(data)); err != nil {
				return fmt.Errorf("failed to upload schedule %q: %w", saved.Slug, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("schedule save failed", slog.String("session_id", sessionID), slog.Any("error", err))
		return nil, err
	}
	s.logger.Info("schedule saved", slog.String("session_id", sessionID), slog.String("slug", saved.Slug))
	return saved, nil
}

// Load opens a session over a saved schedule.
func (s *ScheduleService) Load(ctx context.Context, slugValue string) (*ImportResult, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("schedule %q: %w", slugValue, ErrNotFound)
	}
	saved, err := s.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return nil, fmt.Errorf("schedule %q: %w", slugValue, ErrNotFound)
		}
		return nil, err
	}
	return s.Import(saved.Name, saved.Document)
}

// ListSaved returns the stored schedules, most recently updated first.
func (s *ScheduleService) ListSaved(ctx context.Context) ([]models.SavedSchedule, error) {
	if s.repo == nil {
		return []models.SavedSchedule{}, nil
	}
	return s.repo.List(ctx)
}

// DeleteSaved removes a saved schedule and its uploaded copy.
func (s *ScheduleService) DeleteSaved(ctx context.Context, slugValue string) error {
	if s.repo == nil {
		return fmt.Errorf("schedule %q: %w", slugValue, ErrNotFound)
	}
	saved, err := s.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, repositories.ErrScheduleNotFound) {
			return fmt.Errorf("schedule %q: %w", slugValue, ErrNotFound)
		}
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.repo.Delete(gCtx, saved.Slug)
	})
	if s.uploader != nil && saved.StorageKey != nil {
		g.Go(func() error {
			return s.uploader.Delete(gCtx, *saved.StorageKey)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to delete schedule %q: %w", saved.Slug, err)
	}
	s.logger.Info("schedule deleted", slog.String("slug", saved.Slug))
	return nil
}

// ScheduleSlug is the database key of a schedule name.
func ScheduleSlug(name string) string {
	if v := slug.Make(strings.TrimSpace(name)); v != "" {
		return v
	}
	return "schedule"
}
