package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// ListRecent returns the newest ledger entries across all users.
func (s *Service) ListRecent(ctx context.Context, limit, offset int) ([]domain.ActivityLogEntry, error) {
	limit, offset = clampPage(limit, offset)
	entries, err := s.repo.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	return entries, nil
}

// ListByUser returns the newest ledger entries written by one user.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLogEntry, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}
	limit, offset = clampPage(limit, offset)
	entries, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list user activity: %w", err)
	}
	return entries, nil
}
