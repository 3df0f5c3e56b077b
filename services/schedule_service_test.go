package services_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/models"
	"github.com/Dosada05/tournament-scheduler/repositories"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/storage"
	"github.com/Dosada05/tournament-scheduler/timing"
)

type memoryRepo struct {
	mu    sync.Mutex
	bySlg map[string]models.SavedSchedule
	err   error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{bySlg: make(map[string]models.SavedSchedule)}
}

func (r *memoryRepo) Save(_ context.Context, s *models.SavedSchedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	s.ID = int64(len(r.bySlg) + 1)
	r.bySlg[s.Slug] = *s
	return nil
}

func (r *memoryRepo) Create(ctx context.Context, s *models.SavedSchedule) error {
	if _, err := r.GetBySlug(ctx, s.Slug); err == nil {
		return repositories.ErrScheduleSlugConflict
	}
	return r.Save(ctx, s)
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*models.SavedSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.bySlg[slug]
	if !ok {
		return nil, repositories.ErrScheduleNotFound
	}
	return &s, nil
}

func (r *memoryRepo) List(context.Context) ([]models.SavedSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SavedSchedule, 0, len(r.bySlg))
	for _, s := range r.bySlg {
		out = append(out, s)
	}
	return out, nil
}

func (r *memoryRepo) Delete(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bySlg[slug]; !ok {
		return repositories.ErrScheduleNotFound
	}
	delete(r.bySlg, slug)
	return nil
}

type memoryUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (u *memoryUploader) Upload(_ context.Context, key, contentType string, r io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[key] = data
	u.types[key] = contentType
	return &storage.UploadResult{Key: key, Location: u.GetPublicURL(key)}, nil
}

func (u *memoryUploader) Delete(_ context.Context, key string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.objects, key)
	return nil
}

func (u *memoryUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func newScheduleService(repo repositories.ScheduleRepository, up storage.FileUploader) *services.ScheduleService {
	store := services.NewSessionStore(services.SessionStoreConfig{TTL: time.Hour, Engine: timing.NewEngine(70, 10)})
	return services.NewScheduleService(store, brackets.NewGenerator(nil, nil), repo, up, nil)
}

func sixTeams() []string {
	return []string{"Adler", "Bären", "Füchse", "Luchse", "Wölfe", "Falken"}
}

func TestScheduleService_Generate(t *testing.T) {
	svc := newScheduleService(nil, nil)

	res, err := svc.Generate(context.Background(), services.GenerateRequest{
		Name:   "Sommer Cup",
		Teams:  sixTeams(),
		Config: brackets.Config{TemplateID: "groups-2x3-playoff"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sommer Cup", res.Session.Name)
	assert.Len(t, res.Tournament.Games, 10)
	assert.NotEmpty(t, res.Operations)

	res.Session.View(func(g *models.Graph) {
		assert.Len(t, g.Teams(), 6)
		assert.Len(t, g.Games(), 10)
	})
	v, err := svc.Validate(res.Session.ID)
	require.NoError(t, err)
	assert.True(t, v.IsValid, "%+v", v.Errors)
}

func TestScheduleService_GenerateRejectsTeamCount(t *testing.T) {
	svc := newScheduleService(nil, nil)
	_, err := svc.Generate(context.Background(), services.GenerateRequest{
		Teams:  []string{"a", "b", "c"},
		Config: brackets.Config{TemplateID: "round-robin-6"},
	})
	assert.ErrorIs(t, err, brackets.ErrTeamCountMismatch)
	assert.Equal(t, 0, svc.Sessions().Len())
}

func TestScheduleService_ImportExport(t *testing.T) {
	svc := newScheduleService(nil, nil)
	doc := `[{"field":"A","games":[{"stage":"Pool","standing":"1","home":"x","away":"y","official":""}]}]`

	res, err := svc.Import("cup", []byte(doc))
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	out, err := svc.Export(res.Session.ID)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))

	_, err = svc.Export("missing")
	assert.ErrorIs(t, err, services.ErrSessionNotFound)
}

func TestScheduleService_Save(t *testing.T) {
	repo := newMemoryRepo()
	up := newMemoryUploader()
	svc := newScheduleService(repo, up)
	ctx := context.Background()

	gen, err := svc.Generate(ctx, services.GenerateRequest{
		Name:   "Sommer Cup",
		Teams:  sixTeams(),
		Config: brackets.Config{TemplateID: "groups-2x3-playoff"},
	})
	require.NoError(t, err)

	saved, err := svc.Save(ctx, gen.Session.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "sommer-cup", saved.Slug)
	require.NotNil(t, saved.StorageKey)
	assert.Equal(t, "schedules/sommer-cup.json", *saved.StorageKey)
	assert.Equal(t, "https://cdn.example.com/schedules/sommer-cup.json", *saved.PublicURL)

	exported, err := svc.Export(gen.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, exported, up.objects["schedules/sommer-cup.json"])
	assert.Equal(t, storage.ScheduleContentType, up.types["schedules/sommer-cup.json"])

	stored, err := repo.GetBySlug(ctx, "sommer-cup")
	require.NoError(t, err)
	assert.JSONEq(t, string(exported), string(stored.Document))

	// a saved schedule reopens as a new session
	loaded, err := svc.Load(ctx, "sommer-cup")
	require.NoError(t, err)
	assert.NotEqual(t, gen.Session.ID, loaded.Session.ID)
	again, err := svc.Export(loaded.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, exported, again)

	_, err = svc.Load(ctx, "unknown")
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, svc.DeleteSaved(ctx, "sommer-cup"))
	assert.Empty(t, up.objects)
	assert.ErrorIs(t, svc.DeleteSaved(ctx, "sommer-cup"), services.ErrNotFound)
}

func TestScheduleService_SaveRefusesInvalid(t *testing.T) {
	repo := newMemoryRepo()
	svc := newScheduleService(repo, nil)

	res, err := svc.Import("broken", []byte(`[{"field":"A","games":[{"stage":"s","standing":"1","home":"","away":"x","official":""}]}]`))
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), res.Session.ID, "")
	assert.ErrorIs(t, err, services.ErrScheduleInvalid)
	list, err := svc.ListSaved(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestScheduleService_SavePropagatesStoreError(t *testing.T) {
	repo := newMemoryRepo()
	repo.err = errors.New("connection refused")
	svc := newScheduleService(repo, newMemoryUploader())

	res, err := svc.Import("cup", []byte(`[{"field":"A","games":[{"stage":"s","standing":"1","home":"x","away":"y","official":""}]}]`))
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), res.Session.ID, "Cup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestScheduleSlug(t *testing.T) {
	assert.Equal(t, "sommer-cup-2024", services.ScheduleSlug("Sommer Cup 2024"))
	assert.Equal(t, "schedule", services.ScheduleSlug(" "))
}
