package sqldb

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmynk/showroom/internal/models"
)

// SubscribeToNewsletter inserts a subscription. A second insert for the same
// email fails with an error wrapping storage.ErrDuplicate.
func (s *Store) SubscribeToNewsletter(ctx context.Context, in models.NewNewsletterSubscription) (models.NewsletterSubscription, error) {
	createdAt := s.timestamp()

	query, args, err := s.sb.Insert("newsletters").
		Columns("email", "created_at").
		Values(in.Email, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.NewsletterSubscription{}, s.writeError("subscribe to newsletter", err)
	}

	sub := models.NewsletterSubscription{Email: in.Email, CreatedAt: createdAt}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sub.ID); err != nil {
		return models.NewsletterSubscription{}, s.writeError("subscribe to newsletter", err, "email", in.Email)
	}
	return sub, nil
}

// IsEmailSubscribed reports whether email has a subscription row.
func (s *Store) IsEmailSubscribed(ctx context.Context, email string) bool {
	query, args, err := s.sb.Select("1").
		From("newsletters").
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		s.readFailed("check subscription", err)
		return false
	}

	var one int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		s.readFailed("check subscription", err, "email", email)
		return false
	}
	return true
}
