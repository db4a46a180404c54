package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrGenreReferenceMissing = errors.New("referenced genre does not exist")
	ErrGenreReferenced       = errors.New("genre is referenced by movies")
)

// SQLSTATE foreign_key_violation
const pgForeignKeyViolation = "23503"

// translateWriteError maps driver errors onto repository sentinels.
func translateWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, ErrGenreReferenceMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}
