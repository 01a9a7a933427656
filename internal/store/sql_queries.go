package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// userColumns is the canonical column order shared by every user query and
// the corresponding row scans.
var userColumns = []string{"id", "email", "username", "full_name", "is_active"}

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert("users").
		Columns("email", "username", "full_name", "is_active").
		Values(user.Email, user.Username, user.FullName, user.IsActive).
		Suffix("RETURNING id, email, username, full_name, is_active").
		ToSql()
}

func (db *DB) findUserByIDQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) existsByEmailOrUsernameQuery(email, username string) (string, []any, error) {
	return db.builder.
		Select("1").
		From("users").
		Where(sq.Or{sq.Eq{"email": email}, sq.Eq{"username": username}}).
		Limit(1).
		ToSql()
}

func (db *DB) listUsersQuery(skip, limit uint64) (string, []any, error) {
	return db.builder.
		Select(userColumns...).
		From("users").
		OrderBy("id").
		Offset(skip).
		Limit(limit).
		ToSql()
}

// logQuery emits the built SQL at debug level when DATABASE_ECHO is on.
func (db *DB) logQuery(ctx context.Context, query string, args []any) {
	if !db.echo {
		return
	}

	logger.FromContext(ctx).Debug().
		Str("query", query).
		Any("args", args).
		Msg("executing sql query")
}
