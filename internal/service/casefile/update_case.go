package casefile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// UpdateCase applies a partial update. A status that differs from the stored
// one is a transition: the new status, its history entry and the ledger
// entry commit together. The row is locked for the duration, so concurrent
// transitions of one case are serialized.
func (s *Service) UpdateCase(ctx context.Context, input UpdateCaseInput) (c *domain.Case, err error) {
	defer func() { s.observe("update_case", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var transition *domain.HistoryEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Reset per attempt: the transaction may be retried.
		transition = nil

		current, err := s.cases.GetForUpdate(txCtx, input.CaseID)
		if err != nil {
			return fmt.Errorf("get case: %w", err)
		}

		params := input.params()
		if params.Status != nil && *params.Status == current.Status {
			params.Status = nil
		}
		if params.Status != nil && s.cfg.StrictTransitions && !current.Status.CanTransition(*params.Status) {
			return domain.NewValidationError("status",
				fmt.Sprintf("transition %s -> %s is not allowed", current.Status, *params.Status))
		}

		c, err = s.cases.Update(txCtx, input.CaseID, params)
		if err != nil {
			return fmt.Errorf("update case: %w", err)
		}

		if params.Status != nil {
			transition, err = s.history.Record(txCtx, domain.HistoryEntry{
				CaseID:    input.CaseID,
				OldStatus: current.Status,
				NewStatus: *params.Status,
				ChangedBy: actor.UserID,
			})
			if err != nil {
				return fmt.Errorf("record history: %w", err)
			}
		}

		s.ledger.Log(txCtx, domain.ActionUpdateCase, fmt.Sprintf("Updated case %s", input.CaseID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", c.ID.String()),
	}
	if transition != nil {
		s.metrics.CaseTransition(transition.OldStatus.String(), transition.NewStatus.String())
		attrs = append(attrs,
			slog.String("old_status", transition.OldStatus.String()),
			slog.String("new_status", transition.NewStatus.String()),
		)
	}
	s.log.InfoContext(ctx, "case updated", attrs...)

	return c, nil
}
