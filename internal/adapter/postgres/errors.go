package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

// pgCodes maps Postgres error codes to domain sentinels.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
}

// MapError wraps err with entity and key, translating pgx errors into domain
// sentinels. Context errors keep their identity.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	cause := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		cause = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if sentinel, ok := pgCodes[pgErr.Code]; ok {
				cause = sentinel
			}
		}
	}
	return fmt.Errorf("%s %s: %w", entity, key, cause)
}
