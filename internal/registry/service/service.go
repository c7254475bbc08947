package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks FarmStore,SettingsStore,AuthorityOracle,FeeTransferer,AuditPublisher

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fridayblessings411-cell/AgroTour/internal/registry/clock"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/metrics"
	"github.com/fridayblessings411-cell/AgroTour/internal/registry/models"
	"github.com/fridayblessings411-cell/AgroTour/pkg/domain"
	dErrors "github.com/fridayblessings411-cell/AgroTour/pkg/domain-errors"
	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/sentinel"
	"github.com/fridayblessings411-cell/AgroTour/pkg/requestcontext"
)

const tracerName = "github.com/fridayblessings411-cell/AgroTour/internal/registry/service"

type FarmStore interface {
	Insert(ctx context.Context, farm *models.Farm) error
	FindByID(ctx context.Context, id domain.FarmID) (*models.Farm, error)
	FindIDByName(ctx context.Context, name string) (domain.FarmID, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	FindUpdate(ctx context.Context, id domain.FarmID) (*models.FarmUpdate, error)
	Rename(ctx context.Context, id domain.FarmID, rename models.Rename) error
	Count(ctx context.Context) (uint64, error)
}

type SettingsStore interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// AuthorityOracle answers whether a caller may register farms.
type AuthorityOracle interface {
	IsVerifiedAuthority(ctx context.Context, p domain.Principal) (bool, error)
}

// FeeTransferer moves registration fees between principals. It must either
// complete the transfer or leave balances untouched.
type FeeTransferer interface {
	Transfer(ctx context.Context, amount uint64, from, to domain.Principal) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service is the farm registry. It is the only writer of the farm store and
// the registry configuration, and runs every mutation under one lock.
type Service struct {
	farms    FarmStore
	settings SettingsStore
	oracle   AuthorityOracle
	fees     FeeTransferer

	clock          clock.Clock
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer

	mu  sync.RWMutex
	cfg models.Config
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithClock sets the logical clock sampled at every commit.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithMaxFarms sets the capacity ceiling.
func WithMaxFarms(n uint64) Option {
	return func(s *Service) {
		s.cfg.MaxFarms = n
	}
}

// WithRegistrationFee sets the fee used until one is persisted.
func WithRegistrationFee(fee uint64) Option {
	return func(s *Service) {
		s.cfg.RegistrationFee = fee
	}
}

// New constructs a Service and recovers its configuration: persisted
// settings override the option defaults and the next farm id continues from
// the farm store's high-water mark.
func New(ctx context.Context, farms FarmStore, settings SettingsStore, oracle AuthorityOracle, fees FeeTransferer, opts ...Option) (*Service, error) {
	if farms == nil || settings == nil || oracle == nil || fees == nil {
		return nil, errors.New("registry service requires farm store, settings store, oracle and fee transferer")
	}
	s := &Service{
		farms:    farms,
		settings: settings,
		oracle:   oracle,
		fees:     fees,
		clock:    clock.NewSequence(0),
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		cfg: models.Config{
			MaxFarms:        models.DefaultMaxFarms,
			RegistrationFee: models.DefaultRegistrationFee,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	persisted, err := settings.Load(ctx)
	switch {
	case err == nil:
		s.cfg.RegistrationFee = persisted.RegistrationFee
		s.cfg.AuthorityContract = persisted.AuthorityContract
	case errors.Is(err, sentinel.ErrNotFound):
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load registry settings")
	}

	count, err := farms.Count(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count farms")
	}
	s.cfg.NextFarmID = domain.FarmID(count)
	return s, nil
}

func (s *Service) startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "registry."+operation, trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(attrs...)
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}
	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// logAudit logs a committed mutation and forwards it to the audit publisher.
// A failed emit is logged; the mutation stays committed.
func (s *Service) logAudit(ctx context.Context, event audit.Event) {
	event.RequestID = requestcontext.RequestID(ctx)
	if event.ActorID == "" {
		event.ActorID = requestcontext.Principal(ctx).String()
	}
	s.logger.InfoContext(ctx, event.Action,
		"event", event.Action,
		"log_type", "audit",
		"subject", event.Subject,
		"actor_id", event.ActorID,
		"height", event.Height,
		"request_id", event.RequestID,
		"client_ip", requestcontext.ClientIP(ctx),
	)
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish audit event",
			"event", event.Action,
			"error", err,
			"request_id", event.RequestID,
		)
	}
}

func (s *Service) observe(operation string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(operation, start)
	}
}

func (s *Service) incrementCreateRejected(err error) {
	if s.metrics == nil {
		return
	}
	label := "internal"
	if code, ok := models.CodeOf(err); ok {
		label = strconv.FormatUint(uint64(code), 10)
	}
	s.metrics.IncrementCreateRejected(label)
}

func (s *Service) incrementUpdateRejected() {
	if s.metrics != nil {
		s.metrics.IncrementUpdateRejected()
	}
}
