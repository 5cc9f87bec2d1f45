package usecase

import (
	"context"
	"time"

	"industry-flow/internal/repository"
	"industry-flow/internal/usecase/domain"

	"go.uber.org/zap"
)

// Deps bundles collaborators of the usecase layer other than storage.
type Deps = domain.Deps

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TeamUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	NotificationUsecaseInterface
	DocumentUsecaseInterface
	AnalyticsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, deps Deps, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, deps, timeout)
}
