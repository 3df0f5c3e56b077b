package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type rowScanner interface {
	Scan(dest ...any) error
}

func checkAffectedRows(result sql.Result, notFoundError error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return notFoundError
	}
	return nil
}

// mapUniqueViolation переводит нарушение уникального ограничения constraint в target
func mapUniqueViolation(err error, constraint string, target error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == constraint {
		return target
	}
	return err
}

func mapNoRows(err error, notFoundError error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundError
	}
	return err
}
