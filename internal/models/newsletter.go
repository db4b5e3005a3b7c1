package models

import "time"

// NewsletterSubscription represents an email address on the newsletter list.
type NewsletterSubscription struct {
	// ID is assigned by the backend on creation.
	ID int64 `json:"id" db:"id"`

	// Email is the subscribed address. It is unique in the durable backend.
	Email string `json:"email" db:"email"`

	// CreatedAt is set by the backend when the subscription is persisted.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewNewsletterSubscription is the validated input for a subscription.
type NewNewsletterSubscription struct {
	Email string
}
