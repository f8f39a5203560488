// Package service provides the business logic layer (use cases).
// MoneyService loads the raw collections from the data provider, runs the
// summary reducers over them and hands mutations back to the provider.
package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/boddenberg/money-bfa-go/internal/domain"
	"github.com/boddenberg/money-bfa-go/internal/infra/observability"
	"github.com/boddenberg/money-bfa-go/internal/port"
)

var tracer = otel.Tracer("service/money")

const defaultMaxParallel = 4

// MoneyService orchestrates the money dashboard use cases.
type MoneyService struct {
	store       port.MoneyStore
	cache       port.Cache[any]
	metrics     *observability.Metrics
	logger      *zap.Logger
	now         func() time.Time
	defaultLoc  *time.Location
	maxParallel int
}

// Option configures a MoneyService.
type Option func(*MoneyService)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *MoneyService) { s.now = now }
}

// WithDefaultLocation sets the timezone used when a user has none saved.
func WithDefaultLocation(loc *time.Location) Option {
	return func(s *MoneyService) {
		if loc != nil {
			s.defaultLoc = loc
		}
	}
}

// WithMaxParallel bounds concurrent store calls per request.
func WithMaxParallel(n int) Option {
	return func(s *MoneyService) {
		if n > 0 {
			s.maxParallel = n
		}
	}
}

// NewMoneyService creates the service with all dependencies injected.
func NewMoneyService(store port.MoneyStore, cache port.Cache[any], metrics *observability.Metrics, logger *zap.Logger, opts ...Option) *MoneyService {
	s := &MoneyService{
		store:       store,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
		defaultLoc:  time.UTC,
		maxParallel: defaultMaxParallel,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Location is the default timezone for calendar dates without one.
func (s *MoneyService) Location() *time.Location { return s.defaultLoc }

// Backend names the data provider in use.
func (s *MoneyService) Backend() string { return s.store.Name() }

// Health pings the data provider.
func (s *MoneyService) Health(ctx context.Context) *domain.HealthStatus {
	ctx, span := tracer.Start(ctx, "MoneyService.Health")
	defer span.End()

	start := time.Now()
	err := s.store.Ping(ctx)
	svc := domain.ServiceHealth{
		Name:        s.store.Name(),
		Status:      "healthy",
		LatencyMs:   time.Since(start).Milliseconds(),
		LastChecked: s.now().UTC().Format(time.RFC3339),
	}
	status := "healthy"
	if err != nil {
		s.logger.Warn("data provider ping failed", zap.String("backend", s.store.Name()), zap.Error(err))
		svc.Status = "unhealthy"
		status = "unhealthy"
	}
	return &domain.HealthStatus{Status: status, Backend: s.store.Name(), Services: []domain.ServiceHealth{svc}}
}

// userPrefix is the key prefix shared by every entry of one user. The ID is
// query-escaped so it never contains the separator and one user's prefix
// cannot match another user's keys.
func userPrefix(userID string) string {
	return url.QueryEscape(userID) + ":"
}

// cacheKey scopes entries by user so a mutation can drop all of them.
func cacheKey(userID, name string, variant ...any) string {
	key := userPrefix(userID) + name
	for _, v := range variant {
		key += fmt.Sprintf(":%v", v)
	}
	return key
}

// cached returns the entry for name or computes, counts and stores it.
// Summaries depend on the user's calendar day, so the key carries it and
// an entry computed yesterday is never served today.
func cached[T any](ctx context.Context, s *MoneyService, userID, name string, variant []any, compute func() (T, error)) (T, error) {
	var zero T
	settings, err := s.settings(ctx, userID)
	if err != nil {
		return zero, err
	}
	now, _ := s.clock(settings)
	key := cacheKey(userID, name, append([]any{now.Format("2006-01-02")}, variant...)...)

	if v, ok := s.cache.Get(key); ok {
		if t, ok := v.(T); ok {
			s.metrics.IncrCacheHit(name)
			return t, nil
		}
	}
	s.metrics.IncrCacheMiss(name)

	t, err := compute()
	if err != nil {
		return zero, err
	}
	s.metrics.IncrSummary(name)
	s.cache.Set(key, t)
	return t, nil
}

// settings returns the user's saved settings, cached alongside the
// summaries and dropped with them.
func (s *MoneyService) settings(ctx context.Context, userID string) (*domain.Settings, error) {
	key := cacheKey(userID, "settings")
	if v, ok := s.cache.Get(key); ok {
		if st, ok := v.(*domain.Settings); ok {
			return st, nil
		}
	}
	st, err := s.store.GetSettings(ctx, userID)
	if err != nil {
		return nil, s.loadFailed(userID, "settings", err)
	}
	if st == nil {
		st = &domain.Settings{}
	}
	s.cache.Set(key, st)
	return st, nil
}

func (s *MoneyService) invalidate(userID string) {
	n := s.cache.DeletePrefix(userPrefix(userID))
	s.logger.Debug("summaries invalidated", zap.String("user_id", userID), zap.Int("entries", n))
}

// clock returns now in the user's timezone.
func (s *MoneyService) clock(settings *domain.Settings) (time.Time, *time.Location) {
	loc := s.defaultLoc
	if settings != nil && settings.Timezone != "" {
		if l, err := time.LoadLocation(settings.Timezone); err == nil {
			loc = l
		} else {
			s.logger.Warn("unknown user timezone, using default",
				zap.String("timezone", settings.Timezone),
				zap.Error(err),
			)
		}
	}
	return s.now().In(loc), loc
}

func (s *MoneyService) timed(operation string) func() {
	start := time.Now()
	return func() { s.metrics.RecordRequestDuration(operation, time.Since(start)) }
}

func startSpan(ctx context.Context, name, userID string) (context.Context, func()) {
	ctx, span := tracer.Start(ctx, "MoneyService."+name)
	span.SetAttributes(attribute.String("user.id", userID))
	return ctx, func() { span.End() }
}
