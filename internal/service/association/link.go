package association

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

// Link associates one aid type with a case.
// Returns domain.ErrAlreadyExists if the pair is already linked.
func (s *Service) Link(ctx context.Context, input LinkInput) (link *domain.CaseAidType, err error) {
	defer func() { s.observe("link_aid_type", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCase(txCtx, input.CaseID); err != nil {
			return err
		}

		if _, err := s.aidTypes.GetByID(txCtx, input.AidTypeID); err != nil {
			return fmt.Errorf("get aid type: %w", err)
		}

		created, err := s.links.Link(txCtx, input.CaseID, input.AidTypeID)
		if err != nil {
			return fmt.Errorf("link aid type: %w", err)
		}
		link = created

		s.ledger.Log(txCtx, domain.ActionLinkAidType,
			fmt.Sprintf("Linked aid type %s to case %s", input.AidTypeID, input.CaseID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "aid type linked",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", input.CaseID.String()),
		slog.String("aid_type_id", input.AidTypeID.String()),
	)

	return link, nil
}

// LinkBatch links several aid types to a case. Every aid type must exist or
// nothing is linked. Pairs that are already linked are skipped and not
// counted. One ledger entry is written for the whole batch.
func (s *Service) LinkBatch(ctx context.Context, input LinkBatchInput) (result *BatchLinkResult, err error) {
	defer func() { s.observe("link_aid_types", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxBatchLink); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(input.AidTypeIDs))
	uniqueIDs := make([]uuid.UUID, 0, len(input.AidTypeIDs))
	for _, id := range input.AidTypeIDs {
		if _, exists := seen[id]; !exists {
			seen[id] = struct{}{}
			uniqueIDs = append(uniqueIDs, id)
		}
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCase(txCtx, input.CaseID); err != nil {
			return err
		}

		missing, err := s.aidTypes.MissingIDs(txCtx, uniqueIDs)
		if err != nil {
			return fmt.Errorf("check aid types: %w", err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("aid type %s: %w", missing[0], domain.ErrNotFound)
		}

		links, err := s.links.BatchLink(txCtx, input.CaseID, uniqueIDs)
		if err != nil {
			return fmt.Errorf("batch link aid types: %w", err)
		}
		result = &BatchLinkResult{LinkedCount: len(links), Associations: links}

		s.ledger.Log(txCtx, domain.ActionLinkAidTypes,
			fmt.Sprintf("Linked %d aid types to case %s", len(links), input.CaseID))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "aid types batch linked",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", input.CaseID.String()),
		slog.Int("requested", len(input.AidTypeIDs)),
		slog.Int("linked", result.LinkedCount),
	)

	return result, nil
}

// Unlink removes one association.
// Returns domain.ErrNotFound if the case is missing or the pair is not linked.
func (s *Service) Unlink(ctx context.Context, input LinkInput) (err error) {
	defer func() { s.observe("unlink_aid_type", err) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireCase(txCtx, input.CaseID); err != nil {
			return err
		}

		if err := s.links.Unlink(txCtx, input.CaseID, input.AidTypeID); err != nil {
			return fmt.Errorf("unlink aid type: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionUnlinkAidType,
			fmt.Sprintf("Removed aid type %s from case %s", input.AidTypeID, input.CaseID))

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "aid type unlinked",
		slog.String("user_id", actor.UserID.String()),
		slog.String("case_id", input.CaseID.String()),
		slog.String("aid_type_id", input.AidTypeID.String()),
	)

	return nil
}
