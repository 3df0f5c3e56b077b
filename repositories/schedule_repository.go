package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/tournament-scheduler/models"
)

var (
	ErrScheduleNotFound     = errors.New("saved schedule not found")
	ErrScheduleSlugConflict = errors.New("saved schedule slug conflict")
)

type ScheduleRepository interface {
	// Save inserts the schedule or replaces the one stored under the same slug.
	Save(ctx context.Context, s *models.SavedSchedule) error
	Create(ctx context.Context, s *models.SavedSchedule) error
	GetBySlug(ctx context.Context, slug string) (*models.SavedSchedule, error)
	List(ctx context.Context) ([]models.SavedSchedule, error)
	Delete(ctx context.Context, slug string) error
}

type postgresScheduleRepository struct {
	db *sql.DB
}

func NewPostgresScheduleRepository(db *sql.DB) ScheduleRepository {
	return &postgresScheduleRepository{db: db}
}

func (r *postgresScheduleRepository) Save(ctx context.Context, s *models.SavedSchedule) error {
	query := `
		INSERT INTO schedules (slug, name, document, storage_key, public_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slug) DO UPDATE
		SET name = EXCLUDED.name,
			document = EXCLUDED.document,
			storage_key = EXCLUDED.storage_key,
			public_url = EXCLUDED.public_url,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query, s.Slug, s.Name, []byte(s.Document), s.StorageKey, s.PublicURL).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *postgresScheduleRepository) Create(ctx context.Context, s *models.SavedSchedule) error {
	query := `
		INSERT INTO schedules (slug, name, document, storage_key, public_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query, s.Slug, s.Name, []byte(s.Document), s.StorageKey, s.PublicURL).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return mapUniqueViolation(err, "schedules_slug_key", ErrScheduleSlugConflict)
	}
	return nil
}

func (r *postgresScheduleRepository) GetBySlug(ctx context.Context, slug string) (*models.SavedSchedule, error) {
	query := `
		SELECT id, slug, name, document, storage_key, public_url, created_at, updated_at
		FROM schedules WHERE slug = $1`

	s, err := scanSchedule(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		return nil, mapNoRows(err, ErrScheduleNotFound)
	}
	return s, nil
}

func (r *postgresScheduleRepository) List(ctx context.Context) ([]models.SavedSchedule, error) {
	query := `
		SELECT id, slug, name, document, storage_key, public_url, created_at, updated_at
		FROM schedules ORDER BY updated_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := make([]models.SavedSchedule, 0)
	for rows.Next() {
		s, scanErr := scanSchedule(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		schedules = append(schedules, *s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *postgresScheduleRepository) Delete(ctx context.Context, slug string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE slug = $1`, slug)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrScheduleNotFound)
}

func scanSchedule(row rowScanner) (*models.SavedSchedule, error) {
	var (
		s        models.SavedSchedule
		document []byte
	)
	err := row.Scan(&s.ID, &s.Slug, &s.Name, &document, &s.StorageKey, &s.PublicURL, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	s.Document = document
	return &s, nil
}
