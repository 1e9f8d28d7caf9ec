package aidtype

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/pkg/ctxutil"
)

func requireAdmin(ctx context.Context) (domain.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.Actor{}, domain.ErrForbidden
	}
	return actor, nil
}

func descriptionOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// CreateAidType adds a catalog entry. The label is NFC-normalized and must be
// unique; a duplicate fails with domain.ErrAlreadyExists.
func (s *Service) CreateAidType(ctx context.Context, input CreateAidTypeInput) (*domain.AidType, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	label := domain.NormalizeLabel(input.Label)

	var created *domain.AidType
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.Create(txCtx, label, descriptionOrNil(input.Description))
		if err != nil {
			return fmt.Errorf("create aid type: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionCreateAidType, fmt.Sprintf("Added aid type: %s", created.Label))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	s.log.InfoContext(ctx, "aid type created",
		slog.String("user_id", actor.UserID.String()),
		slog.String("aid_type_id", created.ID.String()),
	)

	return created, nil
}

// UpdateAidType applies a partial update to a catalog entry.
func (s *Service) UpdateAidType(ctx context.Context, input UpdateAidTypeInput) (*domain.AidType, error) {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var params domain.AidTypeUpdateParams
	if input.Label != nil {
		label := domain.NormalizeLabel(*input.Label)
		params.Label = &label
	}
	if input.Description != nil {
		d := strings.TrimSpace(*input.Description)
		params.Description = &d
	}

	var updated *domain.AidType
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.repo.Update(txCtx, input.AidTypeID, params)
		if err != nil {
			return fmt.Errorf("update aid type: %w", err)
		}

		s.ledger.Log(txCtx, domain.ActionUpdateAidType, fmt.Sprintf("Updated aid type: %s", updated.Label))

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)

	s.log.InfoContext(ctx, "aid type updated",
		slog.String("user_id", actor.UserID.String()),
		slog.String("aid_type_id", updated.ID.String()),
	)

	return updated, nil
}
