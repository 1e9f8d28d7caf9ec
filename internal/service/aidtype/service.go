package aidtype

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/internal/metrics"
)

type aidTypeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AidType, error)
	List(ctx context.Context) ([]domain.AidType, error)
	Create(ctx context.Context, label string, description *string) (*domain.AidType, error)
	Update(ctx context.Context, id uuid.UUID, params domain.AidTypeUpdateParams) (*domain.AidType, error)
	EnsureLabels(ctx context.Context, labels []string) (int, error)
}

type catalogCache interface {
	Get(ctx context.Context) ([]domain.AidType, bool, error)
	Set(ctx context.Context, list []domain.AidType) error
	Invalidate(ctx context.Context) error
}

type ledger interface {
	Log(ctx context.Context, action domain.ActivityAction, description string)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the aid-type catalog. Catalog mutations are admin-only.
type Service struct {
	log     *slog.Logger
	metrics *metrics.Metrics
	repo    aidTypeRepo
	cache   catalogCache
	ledger  ledger
	tx      txManager
}

// NewService creates a catalog service. cache and m may be nil; without a
// cache every read goes to the database.
func NewService(log *slog.Logger, m *metrics.Metrics, repo aidTypeRepo, cache catalogCache, ledger ledger, tx txManager) *Service {
	return &Service{
		log:     log.With("service", "aidtype"),
		metrics: m,
		repo:    repo,
		cache:   cache,
		ledger:  ledger,
		tx:      tx,
	}
}

// invalidate drops the cached catalog after a committed mutation.
func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "catalog cache invalidate failed", slog.String("error", err.Error()))
	}
}
