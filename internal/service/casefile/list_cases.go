package casefile

import (
	"context"
	"fmt"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// ListCases returns case summaries matching every supplied filter, newest
// first. City matches case-insensitively as a substring.
func (s *Service) ListCases(ctx context.Context, input ListCasesInput) ([]domain.CaseSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	cases, err := s.cases.List(ctx, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}

	return cases, nil
}
