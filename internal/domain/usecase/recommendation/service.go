package recommendation

import (
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/notify"
	"github.com/condoindica/condoindica-api/internal/domain/port/persistence"
	"github.com/condoindica/condoindica-api/internal/domain/port/storage"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
)

// Service implements the service recommendation board: submissions,
// comment threads with ratings, and the card image upload used to share
// a recommendation outside the app. Point rewards for participation are
// written in the same transaction as the content they reward.
type Service struct {
	uow          persistence.UnitOfWork
	blobStore    storage.BlobStore
	notifier     notify.Notifier
	codeGen      coreport.CodeGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new recommendation service
func NewService(
	uow persistence.UnitOfWork,
	blobStore storage.BlobStore,
	notifier notify.Notifier,
	codeGen coreport.CodeGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		blobStore:    blobStore,
		notifier:     notifier,
		codeGen:      codeGen,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.RecommendationUseCase = (*Service)(nil)
