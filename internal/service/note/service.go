package note

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/config"
	"github.com/ksarapp/ksar-backend/internal/domain"
)

type noteRepo interface {
	Create(ctx context.Context, caseID, userID uuid.UUID, content string) (*domain.Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type caseRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ledger interface {
	Log(ctx context.Context, action domain.ActivityAction, description string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages free-text notes attached to cases.
type Service struct {
	log    *slog.Logger
	cfg    config.CasesConfig
	notes  noteRepo
	cases  caseRepo
	ledger ledger
	tx     txManager
}

// NewService creates a note service.
func NewService(log *slog.Logger, cfg config.CasesConfig, notes noteRepo, cases caseRepo, ledger ledger, tx txManager) *Service {
	return &Service{
		log:    log.With("service", "note"),
		cfg:    cfg,
		notes:  notes,
		cases:  cases,
		ledger: ledger,
		tx:     tx,
	}
}
