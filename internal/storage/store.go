// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/showroom/internal/models"
)

// ErrDuplicate is wrapped by write errors caused by a uniqueness constraint,
// such as a second subscription for the same email in the durable backend.
var ErrDuplicate = errors.New("duplicate record")

// Store defines the operations every storage backend provides.
// This abstraction allows swapping backends (in-memory, SQLite, PostgreSQL)
// without changing the request handlers.
//
// Operations come in two result kinds:
//
//   - Reads never fail. Not-found is reported as ok == false (or an empty
//     slice / false). A backend that hits an I/O error logs it and returns the
//     same absent result, so callers cannot tell "no data" from "read failed".
//   - Writes return the stored record or an error. Backends log the failure
//     where it happens and return it to the caller.
//
// No operation is transactional with any other.
type Store interface {
	// Name identifies the backend in logs and metrics ("memory", "sqlite", "postgres").
	Name() string

	// InitializeDatabase prepares the backend. It is safe to call on an
	// already initialised store.
	InitializeDatabase(ctx context.Context) error

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (models.User, bool)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (models.User, bool)

	// CreateUser stores a new user and returns it with its assigned ID.
	CreateUser(ctx context.Context, in models.NewUser) (models.User, error)

	// CreateContactSubmission stores a submission, assigning ID and CreatedAt.
	CreateContactSubmission(ctx context.Context, in models.NewContactSubmission) (models.ContactSubmission, error)

	// GetAllContactSubmissions lists submissions ordered by CreatedAt ascending,
	// ties broken by ID.
	GetAllContactSubmissions(ctx context.Context) []models.ContactSubmission

	// SubscribeToNewsletter stores a subscription, assigning ID and CreatedAt.
	// It does not deduplicate: callers check IsEmailSubscribed first.
	SubscribeToNewsletter(ctx context.Context, in models.NewNewsletterSubscription) (models.NewsletterSubscription, error)

	// IsEmailSubscribed reports whether email has a subscription.
	IsEmailSubscribed(ctx context.Context, email string) bool

	// Close releases any resources held by the store.
	Close() error
}

// Pinger is implemented by backends with a remote connection to check.
type Pinger interface {
	Ping(ctx context.Context) error
}
