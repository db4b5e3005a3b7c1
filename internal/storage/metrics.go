package storage

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/showroom/internal/models"
)

// Outcome labels for storage operation metrics.
const (
	OutcomeOK     = "ok"
	OutcomeAbsent = "absent"
	OutcomeError  = "error"
)

// Ensure instrumentedStore implements Store
var _ Store = (*instrumentedStore)(nil)

type storeMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newStoreMetrics(reg prometheus.Registerer) (*storeMetrics, error) {
	m := &storeMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "showroom",
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Storage operations by backend, operation and outcome.",
		}, []string{"backend", "operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "showroom",
			Subsystem: "storage",
			Name:      "operation_duration_seconds",
			Help:      "Storage operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"backend", "operation"}),
	}
	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// instrumentedStore records Prometheus metrics around every operation of the
// wrapped store. It never changes results.
type instrumentedStore struct {
	next    Store
	metrics *storeMetrics
}

// Instrument wraps store so that each operation is counted and timed on reg.
func Instrument(store Store, reg prometheus.Registerer) (Store, error) {
	m, err := newStoreMetrics(reg)
	if err != nil {
		return nil, err
	}
	return &instrumentedStore{next: store, metrics: m}, nil
}

// Unwrap returns the wrapped backend.
func (s *instrumentedStore) Unwrap() Store {
	return s.next
}

func (s *instrumentedStore) observe(op string, start time.Time, outcome string) {
	backend := s.next.Name()
	s.metrics.operations.WithLabelValues(backend, op, outcome).Inc()
	s.metrics.duration.WithLabelValues(backend, op).Observe(time.Since(start).Seconds())
}

func errOutcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

func foundOutcome(ok bool) string {
	if ok {
		return OutcomeOK
	}
	return OutcomeAbsent
}

func (s *instrumentedStore) Name() string {
	return s.next.Name()
}

func (s *instrumentedStore) InitializeDatabase(ctx context.Context) error {
	start := time.Now()
	err := s.next.InitializeDatabase(ctx)
	s.observe("initialize_database", start, errOutcome(err))
	return err
}

func (s *instrumentedStore) GetUser(ctx context.Context, id int64) (models.User, bool) {
	start := time.Now()
	u, ok := s.next.GetUser(ctx, id)
	s.observe("get_user", start, foundOutcome(ok))
	return u, ok
}

func (s *instrumentedStore) GetUserByUsername(ctx context.Context, username string) (models.User, bool) {
	start := time.Now()
	u, ok := s.next.GetUserByUsername(ctx, username)
	s.observe("get_user_by_username", start, foundOutcome(ok))
	return u, ok
}

func (s *instrumentedStore) CreateUser(ctx context.Context, in models.NewUser) (models.User, error) {
	start := time.Now()
	u, err := s.next.CreateUser(ctx, in)
	s.observe("create_user", start, errOutcome(err))
	return u, err
}

func (s *instrumentedStore) CreateContactSubmission(ctx context.Context, in models.NewContactSubmission) (models.ContactSubmission, error) {
	start := time.Now()
	c, err := s.next.CreateContactSubmission(ctx, in)
	s.observe("create_contact_submission", start, errOutcome(err))
	return c, err
}

func (s *instrumentedStore) GetAllContactSubmissions(ctx context.Context) []models.ContactSubmission {
	start := time.Now()
	list := s.next.GetAllContactSubmissions(ctx)
	s.observe("get_all_contact_submissions", start, OutcomeOK)
	return list
}

func (s *instrumentedStore) SubscribeToNewsletter(ctx context.Context, in models.NewNewsletterSubscription) (models.NewsletterSubscription, error) {
	start := time.Now()
	sub, err := s.next.SubscribeToNewsletter(ctx, in)
	s.observe("subscribe_to_newsletter", start, errOutcome(err))
	return sub, err
}

func (s *instrumentedStore) IsEmailSubscribed(ctx context.Context, email string) bool {
	start := time.Now()
	ok := s.next.IsEmailSubscribed(ctx, email)
	s.observe("is_email_subscribed", start, OutcomeOK)
	return ok
}

// Ping forwards to the wrapped store when it supports it.
func (s *instrumentedStore) Ping(ctx context.Context) error {
	if p, ok := s.next.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func (s *instrumentedStore) Close() error {
	return s.next.Close()
}
