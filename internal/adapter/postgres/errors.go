package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sectorflow/demand-service/internal/domain"
)

// pgCodes maps SQLSTATE codes to the domain error they surface as.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists,  // unique_violation
	"23503": domain.ErrNotFound,       // foreign_key_violation
	"23502": domain.ErrValidation,     // not_null_violation
	"23514": domain.ErrValidation,     // check_violation
	"22P02": domain.ErrValidation,     // invalid_text_representation
	"22001": domain.ErrValidation,     // string_data_right_truncation
	"40001": domain.ErrConflict,       // serialization_failure
	"40P01": domain.ErrConflict,       // deadlock_detected
	"57014": context.DeadlineExceeded, // query_canceled, raised by statement_timeout
}

// MapError wraps err with the entity and id and translates driver errors
// into domain errors. Context errors pass through unchanged in kind.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodes[pgErr.Code]; ok {
				target = mapped
			}
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, target)
}
