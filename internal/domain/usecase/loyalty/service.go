package loyalty

import (
	"context"

	errs "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/persistence"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// Service implements the loyalty ledger operations: coupon purchase,
// redemption validation, point awards and ledger inspection. All
// multi-write operations run inside one unit of work; lost conditional
// writes are retried a bounded number of times before surfacing.
type Service struct {
	uow          persistence.UnitOfWork
	codeGen      coreport.CodeGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	maxRetries   int
	retryDelay   coreport.Duration
}

// NewService creates a loyalty service
func NewService(
	uow persistence.UnitOfWork,
	codeGen coreport.CodeGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	maxRetries int,
) *Service {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Service{
		uow:          uow,
		codeGen:      codeGen,
		timeProvider: timeProvider,
		logger:       logger,
		maxRetries:   maxRetries,
		retryDelay:   50 * coreport.Millisecond,
	}
}

var _ usecase.LoyaltyUseCase = (*Service)(nil)

// retryOnConflict runs op, retrying when it reports a lost conditional
// write. Each retry backs off linearly on the attempt number. Precondition
// and not-found failures are never retried.
func (s *Service) retryOnConflict(ctx context.Context, operation string, op func() error) error {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			s.logger.Warn("Retrying after concurrent modification", map[string]any{
				"operation":   operation,
				"attempt":     attempt,
				"max_retries": s.maxRetries,
			})
			s.timeProvider.Sleep(s.retryDelay * coreport.Duration(attempt))
		}

		err = op()
		if err == nil || !errs.IsConcurrentModificationError(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	s.logger.Error("Operation failed after exhausting retries", map[string]any{
		"operation":   operation,
		"max_retries": s.maxRetries,
		"error":       err.Error(),
	})
	return err
}
