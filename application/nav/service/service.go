package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fundnav/application/nav/domain"
)

// Service is the convenience layer over the repository. It adds nothing to
// query semantics; it forwards each call and records its outcome. Construct
// one explicitly and pass it around instead of sharing a package-level
// instance.
type Service struct {
	repo domain.Repository
	log  *zap.Logger
}

// New creates a Service on the given repository.
func New(repo domain.Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// QueryNAV returns NAV rows matching the filter.
func (s *Service) QueryNAV(ctx context.Context, filter domain.QueryFilter) (*domain.Table, error) {
	queryID := uuid.NewString()
	start := time.Now()

	table, err := s.repo.QueryNAV(ctx, filter)
	if err != nil {
		s.log.Error("nav query failed",
			zap.String("query_id", queryID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Debug("nav query completed",
		zap.String("query_id", queryID),
		zap.Int("rows", table.Len()),
		zap.Strings("codes", filter.Codes),
		zap.Duration("duration", time.Since(start)),
	)
	return table, nil
}

// ListCodes returns all distinct fund codes in ascending order.
func (s *Service) ListCodes(ctx context.Context) ([]string, error) {
	queryID := uuid.NewString()
	start := time.Now()

	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		s.log.Error("code listing failed",
			zap.String("query_id", queryID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	s.log.Debug("code listing completed",
		zap.String("query_id", queryID),
		zap.Int("codes", len(codes)),
		zap.Duration("duration", time.Since(start)),
	)
	return codes, nil
}

// DateRange returns the min/max observation date over the whole table.
func (s *Service) DateRange(ctx context.Context) (domain.DateRange, error) {
	queryID := uuid.NewString()
	start := time.Now()

	dr, err := s.repo.DateRange(ctx)
	if err != nil {
		s.log.Error("date range query failed",
			zap.String("query_id", queryID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return domain.DateRange{}, err
	}

	s.log.Debug("date range query completed",
		zap.String("query_id", queryID),
		zap.Duration("duration", time.Since(start)),
	)
	return dr, nil
}

// TestConnection probes the database and reports the outcome as a status.
func (s *Service) TestConnection(ctx context.Context) domain.ConnStatus {
	return s.repo.TestConnection(ctx)
}

// Close releases the underlying connection pool.
func (s *Service) Close() error {
	return s.repo.Close()
}
