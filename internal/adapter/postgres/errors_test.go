package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/chosung-quiz/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if got := MapError(nil, "quiz_pool", "사과_1"); got != nil {
		t.Errorf("MapError(nil) = %v, want nil", got)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	got := MapError(pgx.ErrNoRows, "quiz_pool", "사과_1")

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("MapError(ErrNoRows) does not wrap domain.ErrNotFound: %v", got)
	}
	if want := "quiz_pool 사과_1: not found"; got.Error() != want {
		t.Errorf("MapError(ErrNoRows).Error() = %q, want %q", got.Error(), want)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	got := MapError(fmt.Errorf("insert: %w", pgErr), "quiz_pool", "사과_1")

	if !errors.Is(got, domain.ErrAlreadyExists) {
		t.Errorf("MapError(23505) does not wrap domain.ErrAlreadyExists: %v", got)
	}
}

func TestMapError_Validation(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"23514", "23502"} {
		got := MapError(&pgconn.PgError{Code: code}, "quiz_pool", "k")
		if !errors.Is(got, domain.ErrValidation) {
			t.Errorf("MapError(%s) does not wrap domain.ErrValidation: %v", code, got)
		}
	}
}

func TestMapError_ContextPassThrough(t *testing.T) {
	t.Parallel()

	for _, cause := range []error{context.Canceled, context.DeadlineExceeded} {
		got := MapError(cause, "quiz_pool", "k")
		if !errors.Is(got, cause) {
			t.Errorf("MapError(%v) lost the context error: %v", cause, got)
		}
		if errors.Is(got, domain.ErrNotFound) {
			t.Errorf("MapError(%v) must not map to a domain error", cause)
		}
	}
}

func TestMapError_Other(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	got := MapError(cause, "quiz_pool", "k")

	if !errors.Is(got, cause) {
		t.Errorf("MapError(other) does not wrap the cause: %v", got)
	}
}
