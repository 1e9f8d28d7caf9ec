package casefile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// DeleteCase removes a case together with its aid-type links, status history
// and notes.
func (s *Service) DeleteCase(ctx context.Context, caseID uuid.UUID) (err error) {
	defer func() { s.observe("delete_case", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if caseID == uuid.Nil {
		return domain.NewValidationError("case_id", "required")
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cases.Delete(txCtx, caseID); err != nil {
			return fmt.Errorf("delete case: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionDeleteCase, fmt.Sprintf("Deleted case %s", caseID))

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "case deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", caseID.String()),
	)

	return nil
}
