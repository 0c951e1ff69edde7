package usecase

import (
	"context"
	"time"

	"workio/internal/repository"
	"workio/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	TaskUsecaseInterface
	DocumentUsecaseInterface
	TeamUsecaseInterface
	MasterUsecaseInterface
	AccountUsecaseInterface
	AuditUsecaseInterface
	ReportUsecaseInterface
	NotificationUsecaseInterface
	OverviewUsecaseInterface
}

var _ InterfaceUsecase = (*domain.Usecase)(nil)

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notifier domain.Notifier,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, notifier, timeout)
}
