package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// Append writes one ledger entry for the acting user and returns it.
// Errors are returned to the caller.
func (s *Service) Append(ctx context.Context, action domain.ActivityAction, description string) (*domain.ActivityLogEntry, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !action.IsValid() {
		return nil, domain.NewValidationError("action", "unknown action")
	}

	entry, err := s.repo.Create(ctx, domain.ActivityLogEntry{
		UserID:      actor.UserID,
		Action:      action,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return nil, fmt.Errorf("append activity: %w", err)
	}
	return entry, nil
}

// Log is the best-effort variant of Append used by mutating operations.
// Inside a transaction the entry is written in a savepoint, so a failure
// here never rolls back the caller's work. Failures are logged and counted.
func (s *Service) Log(ctx context.Context, action domain.ActivityAction, description string) {
	err := s.tx.RunInSavepoint(ctx, func(spCtx context.Context) error {
		_, err := s.Append(spCtx, action, description)
		return err
	})
	if err != nil {
		s.metrics.LedgerFailure(action.String())
		s.log.WarnContext(ctx, "activity ledger append failed",
			slog.String("action", action.String()),
			slog.String("error", err.Error()),
		)
	}
}
