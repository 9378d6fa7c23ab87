package usecase

import (
	"context"
	"time"

	"github.com/alkharfy/cveeez-dash/internal/auth"
	"github.com/alkharfy/cveeez-dash/internal/repository"
	"github.com/alkharfy/cveeez-dash/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	TeamUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, authSvc *auth.Service, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, authSvc, timeout)
}
