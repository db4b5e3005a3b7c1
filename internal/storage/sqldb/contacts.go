package sqldb

import (
	"context"

	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/mmynk/showroom/internal/models"
)

var contactColumns = []string{"id", "name", "email", "phone", "kitchen_size", "message", "created_at"}

// CreateContactSubmission inserts a contact submission stamped with the
// current time.
func (s *Store) CreateContactSubmission(ctx context.Context, in models.NewContactSubmission) (models.ContactSubmission, error) {
	in = in.Normalize()
	createdAt := s.timestamp()

	query, args, err := s.sb.Insert("contact_submissions").
		Columns("name", "email", "phone", "kitchen_size", "message", "created_at").
		Values(in.Name, in.Email, in.Phone, in.KitchenSize, in.Message, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.ContactSubmission{}, s.writeError("create contact submission", err)
	}

	c := models.ContactSubmission{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		KitchenSize: in.KitchenSize,
		Message:     in.Message,
		CreatedAt:   createdAt,
	}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&c.ID); err != nil {
		return models.ContactSubmission{}, s.writeError("create contact submission", err, "email", in.Email)
	}
	return c, nil
}

// GetAllContactSubmissions lists submissions oldest first. Ordering happens
// in the query.
func (s *Store) GetAllContactSubmissions(ctx context.Context) []models.ContactSubmission {
	list := []models.ContactSubmission{}

	query, args, err := s.sb.Select(contactColumns...).
		From("contact_submissions").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		s.readFailed("list contact submissions", err)
		return list
	}

	if err := sqlscan.Select(ctx, s.db, &list, query, args...); err != nil {
		s.readFailed("list contact submissions", err)
		return []models.ContactSubmission{}
	}
	return list
}
