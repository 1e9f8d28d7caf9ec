package casefile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/config"
	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/internal/metrics"
)

type caseRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Case, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.CaseDetail, error)
	List(ctx context.Context, filter domain.CaseFilter) ([]domain.CaseSummary, error)
	Create(ctx context.Context, c domain.Case) (*domain.Case, error)
	Update(ctx context.Context, id uuid.UUID, params domain.CaseUpdateParams) (*domain.Case, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type personRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
}

type aidTypeRepo interface {
	MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type linkRepo interface {
	BatchLink(ctx context.Context, caseID uuid.UUID, aidTypeIDs []uuid.UUID) ([]domain.CaseAidType, error)
	ListAidTypes(ctx context.Context, caseID uuid.UUID) ([]domain.AidType, error)
}

type historyRepo interface {
	Record(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error)
}

type ledger interface {
	Log(ctx context.Context, action domain.ActivityAction, description string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the case lifecycle: creation, partial updates with
// status history, deletion and the read views.
type Service struct {
	log      *slog.Logger
	cfg      config.CasesConfig
	metrics  *metrics.Metrics
	cases    caseRepo
	people   personRepo
	aidTypes aidTypeRepo
	links    linkRepo
	history  historyRepo
	ledger   ledger
	tx       txManager
}

// NewService creates a case lifecycle service. m may be nil.
func NewService(
	log *slog.Logger,
	cfg config.CasesConfig,
	m *metrics.Metrics,
	cases caseRepo,
	people personRepo,
	aidTypes aidTypeRepo,
	links linkRepo,
	history historyRepo,
	ledger ledger,
	tx txManager,
) *Service {
	return &Service{
		log:      log.With("service", "casefile"),
		cfg:      cfg,
		metrics:  m,
		cases:    cases,
		people:   people,
		aidTypes: aidTypes,
		links:    links,
		history:  history,
		ledger:   ledger,
		tx:       tx,
	}
}

// observe records the outcome of a mutating operation.
func (s *Service) observe(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(domain.OutcomeOf(err))
	}
	s.metrics.Operation(op, outcome)
}

// dedupe returns ids without duplicates, keeping first-seen order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
