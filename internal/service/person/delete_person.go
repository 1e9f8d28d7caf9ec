package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// DeletePerson removes a person. It fails with domain.ErrConflict while any
// case refers to the person.
func (s *Service) DeletePerson(ctx context.Context, personID uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if personID == uuid.Nil {
		return domain.NewValidationError("person_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.people.GetByID(txCtx, personID)
		if err != nil {
			return fmt.Errorf("get person: %w", err)
		}

		if err := s.people.Delete(txCtx, personID); err != nil {
			return fmt.Errorf("delete person: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionDeletePerson, fmt.Sprintf("Deleted person: %s", p.FullName))

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "person deleted",
		slog.String("user_id", actor.UserID.String()),
		slog.String("person_id", personID.String()),
	)

	return nil
}
