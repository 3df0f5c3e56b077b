package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffectedRows(t *testing.T) {
	assert.NoError(t, checkAffectedRows(fakeResult{rows: 1}, ErrScheduleNotFound))
	assert.ErrorIs(t, checkAffectedRows(fakeResult{}, ErrScheduleNotFound), ErrScheduleNotFound)

	err := checkAffectedRows(fakeResult{err: errors.New("driver gone")}, ErrScheduleNotFound)
	assert.NotErrorIs(t, err, ErrScheduleNotFound)
	assert.Contains(t, err.Error(), "driver gone")
}

func TestMapUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: uniqueViolation, Constraint: "schedules_slug_key"}
	assert.ErrorIs(t, mapUniqueViolation(fmt.Errorf("insert: %w", dup), "schedules_slug_key", ErrScheduleSlugConflict), ErrScheduleSlugConflict)

	other := &pq.Error{Code: uniqueViolation, Constraint: "schedules_pkey"}
	assert.Equal(t, error(other), mapUniqueViolation(other, "schedules_slug_key", ErrScheduleSlugConflict))

	plain := errors.New("timeout")
	assert.Equal(t, plain, mapUniqueViolation(plain, "schedules_slug_key", ErrScheduleSlugConflict))
}

func TestMapNoRows(t *testing.T) {
	assert.ErrorIs(t, mapNoRows(sql.ErrNoRows, ErrScheduleNotFound), ErrScheduleNotFound)
	plain := errors.New("timeout")
	assert.Equal(t, plain, mapNoRows(plain, ErrScheduleNotFound))
}
