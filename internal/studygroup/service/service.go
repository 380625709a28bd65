package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"studyhub/internal/notification"
	"studyhub/internal/studygroup/metrics"
	"studyhub/internal/studygroup/models"
	id "studyhub/pkg/domain"
	dErrors "studyhub/pkg/domain-errors"
	"studyhub/pkg/requestcontext"
)

// GroupStore persists groups and owns the headcount counter.
type GroupStore interface {
	Create(ctx context.Context, g *models.Group) error
	FindByID(ctx context.Context, groupID id.GroupID) (*models.Group, error)
	FindByIDForUpdate(ctx context.Context, groupID id.GroupID) (*models.Group, error)
	Update(ctx context.Context, g *models.Group) error
	IncrementMembers(ctx context.Context, groupID id.GroupID, delta int, now time.Time) (*models.Group, error)
	Delete(ctx context.Context, groupID id.GroupID) error
	ListByOwner(ctx context.Context, ownerID id.UserID) ([]*models.Group, error)
}

// MembershipStore is the ledger of non-owner members.
type MembershipStore interface {
	Add(ctx context.Context, m *models.Membership) error
	Remove(ctx context.Context, groupID id.GroupID, userID id.UserID) error
	IsMember(ctx context.Context, groupID id.GroupID, userID id.UserID) (bool, error)
	ListMembers(ctx context.Context, groupID id.GroupID) ([]*models.Membership, error)
	Count(ctx context.Context, groupID id.GroupID) (int, error)
	DeleteByGroup(ctx context.Context, groupID id.GroupID) (int, error)
}

// JoinRequestStore persists join requests and their status.
type JoinRequestStore interface {
	Create(ctx context.Context, r *models.JoinRequest) error
	FindByID(ctx context.Context, requestID id.JoinRequestID) (*models.JoinRequest, error)
	ListPendingForOwner(ctx context.Context, ownerID id.UserID) ([]*models.JoinRequest, error)
	SetStatus(ctx context.Context, requestID id.JoinRequestID, status models.JoinRequestStatus, now time.Time) (*models.JoinRequest, error)
	LatestForUser(ctx context.Context, groupID id.GroupID, userID id.UserID) (*models.JoinRequest, error)
	DeleteByGroup(ctx context.Context, groupID id.GroupID) (int, error)
}

// Stores is the set of stores bound to one transaction.
type Stores struct {
	Groups   GroupStore
	Members  MembershipStore
	Requests JoinRequestStore
}

// AdmissionTx runs fn as one atomic unit. Either every write fn performs is
// committed or none is. Implementations pass fn a ctx that carries the
// transaction; stores must be called with that ctx.
type AdmissionTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}

// Notifier receives notifications after a transaction commits.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}

// Service enforces the admission rules for study groups: the capacity
// invariant, owner-only actions and the join request state machine.
// The acting user is always an explicit argument.
type Service struct {
	tx       AdmissionTx
	notifier Notifier
	logger   *slog.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(tx AdmissionTx, opts ...Option) *Service {
	s := &Service{
		tx:     tx,
		tracer: otel.Tracer("studyhub/studygroup"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// begin pins the operation timestamp, opens a span and returns the function that closes it and records
// the outcome.
func (s *Service) begin(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	ctx = requestcontext.WithTime(ctx, requestcontext.Now(ctx))
	ctx, span := s.tracer.Start(ctx, "studygroup."+operation, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		result := "ok"
		if err != nil {
			result = string(dErrors.CodeOf(err))
			if dErrors.IsBusinessOutcome(err) {
				span.SetAttributes(attribute.String("studygroup.outcome", result))
			} else {
				span.RecordError(err)
				span.SetStatus(codes.Error, result)
				s.logError(ctx, operation, err)
			}
		}
		span.End()
		if s.metrics != nil {
			s.metrics.ObserveOperation(operation, result, start)
			if dErrors.HasCode(err, dErrors.CodeGroupFull) {
				s.metrics.IncrementGroupFull(operation)
			}
		}
	}
}

// notify sends after commit. Delivery failures never reach the caller.
func (s *Service) notify(ctx context.Context, kind notification.Kind, recipient id.UserID, groupID id.GroupID, message string) {
	if s.notifier == nil {
		return
	}
	n := notification.Notification{
		Kind:        kind,
		RecipientID: recipient,
		GroupID:     groupID,
		Message:     message,
		CreatedAt:   requestcontext.Now(ctx),
	}
	// The dispatcher already logs and counts a full queue.
	err := s.notifier.Notify(ctx, n)
	if err == nil || s.logger == nil || errors.Is(err, notification.ErrQueueFull) {
		return
	}
	s.logger.WarnContext(ctx, "notification not sent",
		"kind", string(kind),
		"recipient_id", recipient.String(),
		"group_id", groupID.String(),
		"error", err,
	)
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}

func (s *Service) logError(ctx context.Context, operation string, err error) {
	if s.logger == nil {
		return
	}
	args := []any{"operation", operation, "error", err}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		args = append(args, "request_id", requestID)
	}
	s.logger.ErrorContext(ctx, "admission operation failed", args...)
}

// nowFrom returns the timestamp pinned for the current operation.
func nowFrom(ctx context.Context) time.Time {
	return requestcontext.Now(ctx)
}

func groupAttr(groupID id.GroupID) attribute.KeyValue {
	return attribute.String("studygroup.group_id", groupID.String())
}

func actorAttr(actorID id.UserID) attribute.KeyValue {
	return attribute.String("studygroup.actor_id", actorID.String())
}
