// Package accounts registers users with bcrypt-hashed passwords.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/showroom/internal/models"
	"github.com/mmynk/showroom/internal/storage"
)

const minPasswordLength = 8

var (
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
	ErrUsernameTaken   = errors.New("username already registered")
	ErrInvalidUsername = errors.New("username is required")
)

// UserStorage is the slice of storage.Store the registrar needs.
type UserStorage interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, bool)
	CreateUser(ctx context.Context, in models.NewUser) (models.User, error)
}

// Registrar creates user accounts.
type Registrar struct {
	storage UserStorage
	cost    int
}

// NewRegistrar creates a registrar hashing with bcrypt.DefaultCost.
func NewRegistrar(storage UserStorage) *Registrar {
	return &Registrar{storage: storage, cost: bcrypt.DefaultCost}
}

// ValidatePassword checks if the password meets minimum requirements.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a user with a hashed password. The username check is a
// best-effort pre-check; the durable backend's unique constraint catches
// concurrent registrations.
func (r *Registrar) Register(ctx context.Context, username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, ErrInvalidUsername
	}
	if err := ValidatePassword(password); err != nil {
		return models.User{}, err
	}

	if _, exists := r.storage.GetUserByUsername(ctx, username); exists {
		return models.User{}, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), r.cost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := r.storage.CreateUser(ctx, models.NewUser{Username: username, Password: string(hashed)})
	if errors.Is(err, storage.ErrDuplicate) {
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// CheckPassword reports whether password matches the user's stored hash.
func CheckPassword(user models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
