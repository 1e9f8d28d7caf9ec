package person

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// CreatePerson registers a person. Household size defaults to 1.
func (s *Service) CreatePerson(ctx context.Context, input CreatePersonInput) (*domain.Person, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := domain.Person{
		FullName:      strings.TrimSpace(input.FullName),
		Phone:         trimOrNil(input.Phone),
		City:          trimOrNil(input.City),
		HouseholdSize: domain.DefaultHouseholdSize,
		Notes:         trimOrNil(input.Notes),
	}
	if input.HouseholdSize != nil {
		p.HouseholdSize = *input.HouseholdSize
	}

	var created *domain.Person
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.people.Create(txCtx, p)
		if err != nil {
			return fmt.Errorf("create person: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionCreatePerson, fmt.Sprintf("Added person: %s", created.FullName))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "person created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("person_id", created.ID.String()),
	)

	return created, nil
}
