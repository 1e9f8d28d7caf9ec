package person

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// UpdatePerson applies a partial update.
func (s *Service) UpdatePerson(ctx context.Context, input UpdatePersonInput) (*domain.Person, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.PersonUpdateParams{
		FullName:      trimPtr(input.FullName),
		Phone:         trimPtr(input.Phone),
		City:          trimPtr(input.City),
		HouseholdSize: input.HouseholdSize,
		Notes:         trimPtr(input.Notes),
	}

	var updated *domain.Person
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.people.Update(txCtx, input.PersonID, params)
		if err != nil {
			return fmt.Errorf("update person: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionUpdatePerson, fmt.Sprintf("Updated person: %s", updated.FullName))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "person updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("person_id", updated.ID.String()),
	)

	return updated, nil
}
