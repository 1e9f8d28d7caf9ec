package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The original error
// stays in the chain so callers can still inspect it with errors.As.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrTimeout, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case pgerrcode.ForeignKeyViolation:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation,
			pgerrcode.InvalidTextRepresentation, pgerrcode.StringDataRightTruncationDataException:
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		case pgerrcode.QueryCanceled:
			return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrTimeout, err)
		}
	}

	if errors.Is(err, domain.ErrStoreFailure) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	return fmt.Errorf("%s %v: %w: %w", entity, id, domain.ErrStoreFailure, err)
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// IsRetryable reports whether the transaction that produced err can be
// re-run from scratch: serialization failures and detected deadlocks.
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}
