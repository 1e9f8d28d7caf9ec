package association

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/config"
	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/internal/metrics"
)

type caseRepo interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type aidTypeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AidType, error)
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type linkRepo interface {
	Link(ctx context.Context, caseID, aidTypeID uuid.UUID) (*domain.CaseAidType, error)
	BatchLink(ctx context.Context, caseID uuid.UUID, aidTypeIDs []uuid.UUID) ([]domain.CaseAidType, error)
	Unlink(ctx context.Context, caseID, aidTypeID uuid.UUID) error
	ListAidTypes(ctx context.Context, caseID uuid.UUID) ([]domain.AidType, error)
}

type ledger interface {
	Log(ctx context.Context, action domain.ActivityAction, description string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service keeps the case to aid-type associations consistent with the
// existence of both sides.
type Service struct {
	log      *slog.Logger
	cfg      config.CasesConfig
	metrics  *metrics.Metrics
	cases    caseRepo
	aidTypes aidTypeRepo
	links    linkRepo
	ledger   ledger
	tx       txManager
}

// NewService creates an association service. m may be nil.
func NewService(
	log *slog.Logger,
	cfg config.CasesConfig,
	m *metrics.Metrics,
	cases caseRepo,
	aidTypes aidTypeRepo,
	links linkRepo,
	ledger ledger,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "association"),
		cfg:      cfg,
		metrics:  m,
		cases:    cases,
		aidTypes: aidTypes,
		links:    links,
		ledger:   ledger,
		tx:       tx,
	}
}

// BatchLinkResult reports the associations a batch actually created.
type BatchLinkResult struct {
	LinkedCount  int
	Associations []domain.CaseAidType
}

func (s *Service) observe(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(domain.OutcomeOf(err))
	}
	s.metrics.Operation(op, outcome)
}

// requireCase returns domain.ErrNotFound when the case does not exist.
func (s *Service) requireCase(ctx context.Context, caseID uuid.UUID) error {
	exists, err := s.cases.Exists(ctx, caseID)
	if err != nil {
		return fmt.Errorf("check case: %w", err)
	}
	if !exists {
		return fmt.Errorf("case %s: %w", caseID, domain.ErrNotFound)
	}
	return nil
}
