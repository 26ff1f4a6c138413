package usecase

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Repositories hand constraint violations back raw; usecases classify them
// into domain outcomes here.

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
