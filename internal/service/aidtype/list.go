package aidtype

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// ListAidTypes returns the whole catalog ordered by label. The cached copy
// is served when available; cache errors fall back to the database.
func (s *Service) ListAidTypes(ctx context.Context) ([]domain.AidType, error) {
	if s.cache != nil {
		list, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			s.metrics.CacheResult("error")
			s.log.WarnContext(ctx, "catalog cache read failed", slog.String("error", err.Error()))
		case ok:
			s.metrics.CacheResult("hit")
			return list, nil
		default:
			s.metrics.CacheResult("miss")
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aid types: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, list); err != nil {
			s.log.WarnContext(ctx, "catalog cache write failed", slog.String("error", err.Error()))
		}
	}

	return list, nil
}

// GetAidType returns one catalog entry.
func (s *Service) GetAidType(ctx context.Context, id uuid.UUID) (*domain.AidType, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("aid_type_id", "required")
	}

	at, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get aid type: %w", err)
	}

	return at, nil
}
