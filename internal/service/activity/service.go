package activity

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ksarapp/ksar-backend/internal/domain"
	"github.com/ksarapp/ksar-backend/internal/metrics"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type activityRepo interface {
	Create(ctx context.Context, entry domain.ActivityLogEntry) (*domain.ActivityLogEntry, error)
	ListRecent(ctx context.Context, limit, offset int) ([]domain.ActivityLogEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.ActivityLogEntry, error)
}

type savepointRunner interface {
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the process-wide activity ledger.
type Service struct {
	log     *slog.Logger
	repo    activityRepo
	tx      savepointRunner
	metrics *metrics.Metrics
}

// NewService creates a ledger service. m may be nil.
func NewService(log *slog.Logger, repo activityRepo, tx savepointRunner, m *metrics.Metrics) *Service {
	return &Service{
		log:     log.With("service", "activity"),
		repo:    repo,
		tx:      tx,
		metrics: m,
	}
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
