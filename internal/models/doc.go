// Package models defines the core domain models for the showroom backend.
//
// # Models
//
//   - User: an operator account (username + stored password)
//   - ContactSubmission: a message sent through the website contact form
//   - NewsletterSubscription: an email address subscribed to the newsletter
//
// Each record kind has a matching New* input type holding the validated,
// caller-supplied subset of its fields. IDs and CreatedAt timestamps are never
// part of an input: the storage backend assigns them at the moment of
// persistence.
//
// # Optional fields
//
// Optional text (KitchenSize, Message) is a *string. A missing, empty or
// whitespace-only value is normalised to nil by Optional, never to "", so it
// serialises as JSON null and is stored as SQL NULL.
package models
