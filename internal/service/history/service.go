// Package history serves the status timeline of a case. Entries are written
// by the case lifecycle service; this package only reads them.
package history

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

type historyRepo interface {
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryEntry, error)
}

type caseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error)
}

type txManager interface {
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides the read views over case history.
type Service struct {
	log     *slog.Logger
	history historyRepo
	cases   caseRepo
	tx      txManager
}

// NewService creates a history service.
func NewService(log *slog.Logger, history historyRepo, cases caseRepo, tx txManager) *Service {
	return &Service{
		log:     log.With("service", "history"),
		history: history,
		cases:   cases,
		tx:      tx,
	}
}

// Timeline returns the status changes of a case, newest first.
func (s *Service) Timeline(ctx context.Context, caseID uuid.UUID) ([]domain.HistoryEntry, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	_, entries, err := s.read(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Summary combines the current case state with its full timeline.
func (s *Service) Summary(ctx context.Context, caseID uuid.UUID) (*domain.CaseTimelineSummary, error) {
	if caseID == uuid.Nil {
		return nil, domain.NewValidationError("case_id", "required")
	}

	c, entries, err := s.read(ctx, caseID)
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []domain.HistoryEntry{}
	}

	return &domain.CaseTimelineSummary{
		CaseID:        c.ID,
		CurrentStatus: c.Status,
		Urgency:       c.Urgency,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		ChangeCount:   len(entries),
		Timeline:      entries,
	}, nil
}

// read loads the case and its history from one snapshot so the timeline
// always ends at the case's current status.
func (s *Service) read(ctx context.Context, caseID uuid.UUID) (c *domain.Case, entries []domain.HistoryEntry, err error) {
	err = s.tx.RunReadOnly(ctx, func(txCtx context.Context) error {
		if c, err = s.cases.GetByID(txCtx, caseID); err != nil {
			return fmt.Errorf("get case: %w", err)
		}
		if entries, err = s.history.ListByCase(txCtx, caseID); err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return c, entries, nil
}
