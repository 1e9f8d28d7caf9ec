package aidtype

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

// DefaultLabels is the catalog installed on a fresh deployment:
// housing, food, clothing, medicine, children, other.
var DefaultLabels = []string{"سكن", "تغذية", "ملابس", "أدوية", "أطفال", "أخرى"}

// SeedLabels inserts every label missing from the catalog and returns how
// many were added. Labels are normalized and deduplicated first; existing
// entries are left untouched. Used by operator tooling, so no actor is
// required and nothing is written to the activity ledger.
func (s *Service) SeedLabels(ctx context.Context, labels []string) (int, error) {
	seen := make(map[string]struct{}, len(labels))
	normalized := make([]string, 0, len(labels))
	for _, l := range labels {
		l = domain.NormalizeLabel(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		normalized = append(normalized, l)
	}

	var added int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		added, err = s.repo.EnsureLabels(txCtx, normalized)
		if err != nil {
			return fmt.Errorf("ensure labels: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if added > 0 {
		s.invalidate(ctx)
	}

	s.log.InfoContext(ctx, "aid type catalog seeded",
		slog.Int("requested", len(normalized)),
		slog.Int("added", added),
	)

	return added, nil
}
