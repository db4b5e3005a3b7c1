package sqldb

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/mmynk/showroom/internal/models"
)

var userColumns = []string{"id", "username", "password"}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id int64) (models.User, bool) {
	return s.getUserWhere(ctx, "get user", sq.Eq{"id": id})
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (models.User, bool) {
	return s.getUserWhere(ctx, "get user by username", sq.Eq{"username": username})
}

func (s *Store) getUserWhere(ctx context.Context, op string, where sq.Eq) (models.User, bool) {
	query, args, err := s.sb.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		s.readFailed(op, err)
		return models.User{}, false
	}

	var user models.User
	if err := sqlscan.Get(ctx, s.db, &user, query, args...); err != nil {
		if !sqlscan.NotFound(err) {
			s.readFailed(op, err)
		}
		return models.User{}, false
	}
	return user, true
}

// CreateUser inserts a new user into the database.
func (s *Store) CreateUser(ctx context.Context, in models.NewUser) (models.User, error) {
	query, args, err := s.sb.Insert("users").
		Columns("username", "password").
		Values(in.Username, in.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.User{}, s.writeError("create user", err)
	}

	user := models.User{Username: in.Username, Password: in.Password}
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		return models.User{}, s.writeError("create user", err, "username", in.Username)
	}
	return user, nil
}
