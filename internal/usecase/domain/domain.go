// Package domain contains application services orchestrating the dashboard modules.
package domain

import (
	"context"
	"errors"
	"time"

	"workio/internal/entities"
	"workio/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "workio/usecase"

// Audit trail module names.
const (
	moduleProjects  = "Projects"
	moduleTasks     = "Tasks"
	moduleDocuments = "Documents"
	moduleTeams     = "Teams"
	moduleMaster    = "Master"
	moduleAccounts  = "Accounts"
)

// Notifier publishes toast notifications.
type Notifier interface {
	Publish(typ entities.NotificationType, msg string) entities.Notification
	Active() []entities.Notification
	Dismiss(id string) error
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	notifier Notifier
	tracer   trace.Tracer
	timeout  time.Duration
	now      func() time.Time
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	notifier Notifier,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log.Named("usecase"),
		repo:     repo,
		notifier: notifier,
		tracer:   otel.Tracer(tracerName),
		timeout:  timeout,
		now:      time.Now,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// begin derives the timeout context and opens a span for op.
func (u *Usecase) begin(ctx context.Context, op string) (context.Context, func()) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	ctx, span := u.tracer.Start(ctx, op)
	return ctx, func() {
		span.End()
		cancel()
	}
}

// finish records the outcome of a mutation in the audit trail and the
// notification feed.
func (u *Usecase) finish(ctx context.Context, module, action string, err error, success string) {
	status := entities.AuditSuccess
	if err != nil {
		status = entities.AuditFailed
		span := trace.SpanFromContext(ctx)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	actor := entities.ActorFrom(ctx)
	auditCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout(u.timeout))
	defer cancel()
	if _, aerr := u.repo.AppendAudit(auditCtx, entities.AuditEntry{
		User:      actor,
		Action:    action,
		Module:    module,
		Timestamp: u.now(),
		Status:    status,
	}); aerr != nil {
		u.log.Warnw("audit append failed", "module", module, "action", action, "err", aerr)
	}

	if err != nil {
		u.log.Infow("action failed", "module", module, "action", action, "actor", actor, "err", err)
	} else {
		u.log.Infow("action done", "module", module, "action", action, "actor", actor)
	}

	if u.notifier == nil {
		return
	}
	if err != nil {
		u.notifier.Publish(entities.NotifyError, failureMessage(action, err))
		return
	}
	u.notifier.Publish(entities.NotifySuccess, success)
}

func auditTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Second
	}
	return d
}

func failureMessage(action string, err error) string {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return "Please fill in all required fields correctly."
	}
	return action + " failed: " + err.Error()
}
