// Package memory provides a process-local implementation of storage.Store.
// Data does not survive a restart; it is meant for development and for
// deployments without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mmynk/showroom/internal/models"
	"github.com/mmynk/showroom/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps one map per entity kind keyed by ID. IDs come from per-entity
// counters that start at 1 and are never reused.
type Store struct {
	mu  sync.Mutex
	now func() time.Time

	users       map[int64]models.User
	contacts    map[int64]models.ContactSubmission
	newsletters map[int64]models.NewsletterSubscription
	nextUser    int64
	nextContact int64
	nextNewslet int64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty in-memory store.
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		users:       make(map[int64]models.User),
		contacts:    make(map[int64]models.ContactSubmission),
		newsletters: make(map[int64]models.NewsletterSubscription),
		nextUser:    1,
		nextContact: 1,
		nextNewslet: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns "memory".
func (s *Store) Name() string {
	return "memory"
}

// InitializeDatabase is a no-op: there is nothing to prepare.
func (s *Store) InitializeDatabase(ctx context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

// GetUserByUsername retrieves the first user with the given username.
// With duplicate usernames the lowest ID wins.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		found models.User
		ok    bool
	)
	for _, u := range s.users {
		if u.Username == username && (!ok || u.ID < found.ID) {
			found, ok = u, true
		}
	}
	return found, ok
}

// CreateUser stores a new user. Usernames are not checked for uniqueness.
func (s *Store) CreateUser(ctx context.Context, in models.NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := models.User{
		ID:       s.nextUser,
		Username: in.Username,
		Password: in.Password,
	}
	s.users[u.ID] = u
	s.nextUser++
	return u, nil
}

// CreateContactSubmission stores a contact submission.
func (s *Store) CreateContactSubmission(ctx context.Context, in models.NewContactSubmission) (models.ContactSubmission, error) {
	in = in.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.ContactSubmission{
		ID:          s.nextContact,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		KitchenSize: in.KitchenSize,
		Message:     in.Message,
		CreatedAt:   s.now().UTC(),
	}
	s.contacts[c.ID] = c
	s.nextContact++
	return c, nil
}

// GetAllContactSubmissions returns every submission ordered by CreatedAt,
// ties broken by ID.
func (s *Store) GetAllContactSubmissions(ctx context.Context) []models.ContactSubmission {
	s.mu.Lock()
	list := make([]models.ContactSubmission, 0, len(s.contacts))
	for _, c := range s.contacts {
		list = append(list, c)
	}
	s.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// SubscribeToNewsletter stores a subscription without checking for an
// existing one.
func (s *Store) SubscribeToNewsletter(ctx context.Context, in models.NewNewsletterSubscription) (models.NewsletterSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := models.NewsletterSubscription{
		ID:        s.nextNewslet,
		Email:     in.Email,
		CreatedAt: s.now().UTC(),
	}
	s.newsletters[sub.ID] = sub
	s.nextNewslet++
	return sub, nil
}

// IsEmailSubscribed scans the subscriptions for an exact match of email.
func (s *Store) IsEmailSubscribed(ctx context.Context, email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.newsletters {
		if sub.Email == email {
			return true
		}
	}
	return false
}
