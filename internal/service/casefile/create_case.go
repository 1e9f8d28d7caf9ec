package casefile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// CreateCase opens a case in status "new" for an existing person. Aid types
// given in the input are linked in the same transaction; if any of them is
// missing nothing is created.
func (s *Service) CreateCase(ctx context.Context, input CreateCaseInput) (c *domain.Case, err error) {
	defer func() { s.observe("create_case", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxBatchLink); err != nil {
		return nil, err
	}

	newCase := domain.Case{
		PersonID:      input.PersonID,
		Status:        domain.CaseStatusNew,
		Urgency:       domain.UrgencyNormal,
		ContactMethod: domain.ContactMethodCall,
		CreatedBy:     actor.UserID,
	}
	if input.Urgency != nil {
		newCase.Urgency = *input.Urgency
	}
	if input.ContactMethod != nil {
		newCase.ContactMethod = *input.ContactMethod
	}
	if input.Description != nil {
		newCase.Description = strings.TrimSpace(*input.Description)
	}
	if input.Notes != nil {
		if n := strings.TrimSpace(*input.Notes); n != "" {
			newCase.Notes = &n
		}
	}
	aidTypeIDs := dedupe(input.AidTypeIDs)

	var linked int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		person, err := s.people.GetByID(txCtx, input.PersonID)
		if err != nil {
			return fmt.Errorf("get person: %w", err)
		}

		if len(aidTypeIDs) > 0 {
			missing, err := s.aidTypes.MissingIDs(txCtx, aidTypeIDs)
			if err != nil {
				return fmt.Errorf("check aid types: %w", err)
			}
			if len(missing) > 0 {
				return fmt.Errorf("aid type %s: %w", missing[0], domain.ErrNotFound)
			}
		}

		c, err = s.cases.Create(txCtx, newCase)
		if err != nil {
			return fmt.Errorf("create case: %w", err)
		}

		if len(aidTypeIDs) > 0 {
			links, err := s.links.BatchLink(txCtx, c.ID, aidTypeIDs)
			if err != nil {
				return fmt.Errorf("link aid types: %w", err)
			}
			linked = len(links)
		}

		s.ledger.Log(txCtx, domain.ActionCreateCase,
			fmt.Sprintf("Created case for person: %s", person.FullName))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "case created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", c.ID.String()),
		slog.String("person_id", c.PersonID.String()),
		slog.Int("aid_types", linked),
	)

	return c, nil
}
