package association

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// ListForCase returns the aid types linked to a case ordered by label.
func (s *Service) ListForCase(ctx context.Context, caseID uuid.UUID) ([]domain.AidType, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	if err := s.requireCase(ctx, caseID); err != nil {
		return nil, err
	}

	aidTypes, err := s.links.ListAidTypes(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("list aid types: %w", err)
	}

	return aidTypes, nil
}
