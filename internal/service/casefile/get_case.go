package casefile

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// GetCase returns a case with person fields, staff names and its aid types
// ordered by label. Both reads share one snapshot.
func (s *Service) GetCase(ctx context.Context, caseID uuid.UUID) (*domain.CaseDetail, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	var detail *domain.CaseDetail
	err := s.tx.RunReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		detail, err = s.cases.GetDetail(txCtx, caseID)
		if err != nil {
			return fmt.Errorf("get case: %w", err)
		}

		aidTypes, err := s.links.ListAidTypes(txCtx, caseID)
		if err != nil {
			return fmt.Errorf("list aid types: %w", err)
		}
		if aidTypes == nil {
			aidTypes = []domain.AidType{}
		}
		detail.AidTypes = aidTypes
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}
