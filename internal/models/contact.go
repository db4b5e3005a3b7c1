package models

import "time"

// ContactSubmission represents a message submitted via the contact form.
// Submissions are immutable once created.
type ContactSubmission struct {
	// ID is assigned by the backend on creation.
	ID int64 `json:"id" db:"id"`

	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`

	// KitchenSize is the free-form kitchen size picked on the form, or nil.
	KitchenSize *string `json:"kitchenSize" db:"kitchen_size"`

	// Message is the optional free text, or nil.
	Message *string `json:"message" db:"message"`

	// CreatedAt is set by the backend when the submission is persisted.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewContactSubmission is the validated input for a contact submission.
type NewContactSubmission struct {
	Name        string
	Email       string
	Phone       string
	KitchenSize *string
	Message     *string
}

// Normalize returns a copy with optional fields passed through Optional.
func (in NewContactSubmission) Normalize() NewContactSubmission {
	in.KitchenSize = Optional(in.KitchenSize)
	in.Message = Optional(in.Message)
	return in
}
