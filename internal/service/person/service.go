package person

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
)

type personRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	List(ctx context.Context, filter domain.PersonFilter) ([]domain.Person, error)
	Create(ctx context.Context, p domain.Person) (*domain.Person, error)
	Update(ctx context.Context, id uuid.UUID, params domain.PersonUpdateParams) (*domain.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ledger interface {
	Log(ctx context.Context, action domain.ActivityAction, description string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the people cases are opened for.
type Service struct {
	log    *slog.Logger
	people personRepo
	ledger ledger
	tx     txManager
}

// NewService creates a person registry service.
func NewService(log *slog.Logger, people personRepo, ledger ledger, tx txManager) *Service {
	return &Service{
		log:    log.With("service", "person"),
		people: people,
		ledger: ledger,
		tx:     tx,
	}
}

// trimOrNil returns nil for nil or whitespace-only input, otherwise the trimmed value.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// trimPtr trims a non-nil value and keeps an empty result, which clears the column.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
