package repository

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ecodive/backoffice-server-go/internal/config"
	"github.com/ecodive/backoffice-server-go/internal/database"
	apperrors "github.com/ecodive/backoffice-server-go/internal/errors"
)

const pgUniqueViolation = "23505"

// psql builds statements with Postgres placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// conflictMessages maps unique constraints to the message shown to the caller.
var conflictMessages = map[string]string{
	"team_members_email_key": "A team member with this email already exists.",
	"users_email_key":        "A user with this email already exists.",
	"users_id_number_key":    "A user with this ID number already exists.",
}

var tableConflictMessages = map[string]string{
	"team_members": "A team member with this information already exists.",
	"users":        "A user with this information already exists.",
}

// HandleNotFound processes a database query result, converting sql.ErrNoRows
// to a nil result without error. This is a common pattern for Find* operations
// where a missing row is not an error condition.
//
// Usage:
//
//	var item model.Item
//	err := r.db.GetContext(ctx, &item, query, args...)
//	return HandleNotFound(&item, err)
func HandleNotFound[T any](result *T, err error) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// mapError turns driver errors into AppErrors. Unique violations become
// conflicts; anything else is an opaque database error.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		if msg, ok := conflictMessages[pqErr.Constraint]; ok {
			return apperrors.Conflict(msg).WithCause(err)
		}
		if msg, ok := tableConflictMessages[pqErr.Table]; ok {
			return apperrors.Conflict(msg).WithCause(err)
		}
		return apperrors.Conflict("A record with this information already exists.").WithCause(err)
	}

	return apperrors.Database(err)
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, config.DBQueryTimeout)
}

// getOne runs a single-row query. A missing row yields (nil, nil).
func getOne[T any](ctx context.Context, db database.DBTX, query string, args ...any) (*T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var item T
	result, err := HandleNotFound(&item, db.GetContext(ctx, &item, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return result, nil
}

// getMany runs a multi-row query and never returns a nil slice.
func getMany[T any](ctx context.Context, db database.DBTX, query string, args ...any) ([]T, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	items := []T{}
	if err := db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// getOneBuilt executes a squirrel builder that returns a single row.
func getOneBuilt[T any](ctx context.Context, db database.DBTX, b sq.Sqlizer) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return getOne[T](ctx, db, query, args...)
}
